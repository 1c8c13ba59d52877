package api

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/authz"
	"github.com/tidepool-org/dieticians/dieticians"
)

type Handler struct {
	dieticians dieticians.Service
	authorizer authz.Authorizer
	logger     *zap.SugaredLogger
}

var _ ServerInterface = &Handler{}

type Params struct {
	fx.In

	Dieticians dieticians.Service
	Authorizer authz.Authorizer
	Logger     *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		dieticians: p.Dieticians,
		authorizer: p.Authorizer,
		logger:     p.Logger,
	}
}
