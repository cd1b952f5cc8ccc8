package http

import (
	"github.com/gin-gonic/gin"

	"clinic-support-router/pkg/response"
)

// Route godoc
// @Summary     Route a customer query
// @Description Classifies the query as FAQ or ORDER and returns the matching responder's answer. Falls back to keyword rules when the LLM is unavailable.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Customer query"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, map[string]any{"query": err.Error()})
		return
	}

	response.OK(c, h.newRouteResp(h.uc.Resolve(ctx, req.Query)))
}

// Classify godoc
// @Summary     Classify a customer query
// @Description Returns the intent decision without calling a responder.
// @Tags        Router
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Customer query"
// @Success     200  {object} classificationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, map[string]any{"query": err.Error()})
		return
	}

	response.OK(c, h.newClassificationResp(h.uc.Classify(ctx, req.Query)))
}
