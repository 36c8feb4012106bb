package otp

import (
	"dormy/infras/otel"
	"dormy/internal/domains/otp/model"
	"dormy/internal/domains/otp/model/dto"
	"dormy/internal/domains/otp/service"
	"dormy/shared/constant"
	"dormy/shared/validator"
	"dormy/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.OTP
	otel    otel.Otel
}

func New(service service.OTP, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts at the root, outside /v1, where mobile clients already call it.
func (handler *Handler) Router(r chi.Router) {
	r.Post("/send-otp", handler.Send)
	r.Post("/verify-otp", handler.Verify)
}

// Send mails a one-time code to the given address.
// @Summary Send OTP
// @Description The code is echoed in the response only when no mailer is configured.
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body dto.SendRequest true "Recipient"
// @Success 200 {object} response.Data[dto.SendResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /send-otp [post]
func (handler *Handler) Send(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendOTP")
	defer scope.End()

	req := dto.SendRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Send(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send otp")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Verify consumes a code. A code verifies at most once.
// @Summary Verify OTP
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Email and code"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /verify-otp [post]
func (handler *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyOTP")
	defer scope.End()

	req := dto.VerifyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Verify(ctx, req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("otp verification failed")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, model.MessageVerified)
}
