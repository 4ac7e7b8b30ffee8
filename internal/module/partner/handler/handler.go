package handler

import (
	"fmt"

	"partner-booking-service/internal/module/partner/models/request"
	"partner-booking-service/internal/module/partner/usecases"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PartnerHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PartnerHandler) AssignPartner(ctx *fiber.Ctx) error {
	var req request.AssignPartner
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("city is required"))
	}

	// call usecase to assign best partner
	resp, err := h.Usecase.AssignBestPartner(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error assign partner: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if resp == nil {
		return helpers.RespError(ctx, h.Log, errors.NotFound("no available partner found"))
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success assign partner")
}
