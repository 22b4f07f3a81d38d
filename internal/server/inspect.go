package server

import (
	"bsteg/api"
	"bsteg/internal/logging"
	"bsteg/pkg/config"
	"bsteg/pkg/pngchunk"
	"github.com/gin-gonic/gin"
	"net/http"
)

// InspectImageHandler godoc
//
// @Summary Inspect the chunk structure of a png image
// @Description This endpoint will verify the chunk checksums of the supplied png and report its chunk layout and header metadata. All errors are returned as JSON
// @Tags png
// @Accept json
// @Produce json
// @Param requestBody body api.InspectRequest true "Body with the png to inspect"
// @Success 200 {object} api.InspectResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /png/inspect [post]
func InspectImageHandler(ctx *gin.Context) {
	var requestBody api.InspectRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image inspect request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	report, err := pngchunk.Inspect(requestBody.Image, config.InspectConfig{})
	if err != nil {
		logger.WithError(err).Error("Error inspecting image")
		abortWithCodecError(ctx, err, errInspect)
		return
	}

	logger.With("chunks", len(report.Chunks)).Info("Image inspection was successful")

	ctx.JSON(http.StatusOK, api.InspectResponse{Report: report})
}
