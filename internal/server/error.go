package server

import (
	"bsteg/api"
	"bsteg/pkg/bmp"
	"bsteg/pkg/pngchunk"
	"bsteg/pkg/steg"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errEmbed             = api.Error{Code: "embed_error", Error: "An error occurred while embedding the payload"}
	errExtract           = api.Error{Code: "extract_error", Error: "An error occurred while extracting the payload"}
	errInspect           = api.Error{Code: "inspect_error", Error: "An error occurred while inspecting the image"}
)

// requestErrors are failures caused by the supplied container or payload rather than by the server.
var requestErrors = []error{
	bmp.ErrNotBitmap,
	bmp.ErrTruncated,
	bmp.ErrBadPixelOffset,
	bmp.ErrBadDimensions,
	bmp.ErrUnsupportedDepth,
	bmp.ErrMisalignedPixelData,
	steg.ErrPayloadTooLarge,
	steg.ErrTerminatorNotFound,
	pngchunk.ErrNotPNG,
	pngchunk.ErrTruncatedChunk,
	pngchunk.ErrChecksumMismatch,
	pngchunk.ErrMissingHeader,
	pngchunk.ErrUnknownColorModel,
	pngchunk.ErrUnsupportedColorModel,
	pngchunk.ErrDecompressedTooLarge,
}

func statusForError(err error) int {
	for _, requestErr := range requestErrors {
		if errors.Is(err, requestErr) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// abortWithCodecError reports request-caused failures with their real message, and anything else with the
// fallback DTO so internals are not leaked.
func abortWithCodecError(ctx *gin.Context, err error, fallback api.Error) {
	if statusForError(err) == http.StatusBadRequest {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: fallback.Code, Error: err.Error()})
		return
	}
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, fallback)
}
