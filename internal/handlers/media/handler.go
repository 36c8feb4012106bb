package media

import (
	"dormy/infras/otel"
	"dormy/internal/domains/media/model/dto"
	"dormy/internal/domains/media/service"
	"dormy/shared/constant"
	"dormy/shared/failure"
	"dormy/shared/validator"
	"dormy/transport/http/response"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.Upload)
		routerGroup.Post("/upload-base64", handler.UploadBase64)
	})
}

// Upload stores an image and returns its public URL.
// @Summary Upload an image
// @Description Images wider than the configured maximum are scaled down. Uploads that exceed the deadline answer 504.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image (png or jpeg)"
// @Param folder formData string true "Target folder" Enums(listings, profiles, qr, verifications)
// @Param upload_preset formData string false "Client upload preset"
// @Success 201 {object} response.Data[dto.UploadResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/media/upload [post]
// @Security BearerAuth
func (handler *Handler) Upload(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Upload")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.UploadRequest{
		Folder:       request.FormValue("folder"),
		UploadPreset: request.FormValue("upload_preset"),
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err == nil {
		defer file.Close()

		req.File = fileHeader

		req.Content, err = io.ReadAll(file)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to read uploaded file")
			response.WithError(writer, failure.BadRequest(err))

			return
		}
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("folder", req.Folder).Msg("failed to upload media")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Media uploaded " + res.Key)

	response.WithJSON(writer, http.StatusCreated, res)
}

// UploadBase64 stores an image sent as a data URI.
// @Summary Upload a base64 image
// @Tags Media
// @Accept json
// @Produce json
// @Param request body dto.UploadBase64Request true "Data URI and folder"
// @Success 201 {object} response.Data[dto.UploadResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/media/upload-base64 [post]
// @Security BearerAuth
func (handler *Handler) UploadBase64(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadBase64")
	defer scope.End()

	req := dto.UploadBase64Request{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadBase64(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("folder", req.Folder).Msg("failed to upload media")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
