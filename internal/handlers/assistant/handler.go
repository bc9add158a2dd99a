package assistant

import (
	"net/http"

	"grandhotel/infras/otel"
	"grandhotel/internal/domains/assistant/model/dto"
	"grandhotel/internal/domains/assistant/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/validator"
	"grandhotel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assistant
	otel    otel.Otel
}

func New(service service.Assistant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assistant", func(routerGroup chi.Router) {
		routerGroup.Post("/chat", handler.Chat)
	})
}

// Chat handles a guest message for the reception assistant.
// @Summary Chat with the reception assistant
// @Description Send a message and conversation history to the assistant, executing any booking or cancellation it decides on.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} response.Data[dto.ChatResponse] "Assistant reply"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assistant/chat [post]
func (handler *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	req := dto.ChatRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Chat(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process chat message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Chat message processed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
