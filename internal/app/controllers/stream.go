package controllers

import (
	"iter"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/champlain/campus/internal/middleware"
	"github.com/champlain/campus/internal/pkg/logger"
)

// streamEvents writes each element of seq as one server-sent event and
// flushes it immediately. An error before the first event is answered like
// any other API error; after that the stream is just cut.
func streamEvents[T any](ctx *gin.Context, seq iter.Seq2[*T, error]) {
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	started := false
	for item, err := range seq {
		if err != nil {
			if !started {
				middleware.HandleAPIError(ctx, err)
				return
			}
			logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Event stream aborted")
			return
		}
		started = true
		ctx.Render(-1, sse.Event{Data: item})
		ctx.Writer.Flush()
	}

	if !started {
		ctx.Header("Content-Type", sse.ContentType)
		ctx.Status(http.StatusOK)
		ctx.Writer.WriteHeaderNow()
	}
}
