package server

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/topsis/pkg/api"
)

// ZstdMiddleware decompresses zstd request bodies and compresses responses
// for clients that accept zstd. Paths in skipRoutes pass through untouched.
func ZstdMiddleware(skipRoutes []string) fiber.Handler {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("create zstd decoder: %v", err))
	}
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("create zstd encoder: %v", err))
	}

	return func(c *fiber.Ctx) error {
		if slices.Contains(skipRoutes, c.Path()) {
			return c.Next()
		}

		if strings.EqualFold(c.Get(fiber.HeaderContentEncoding), ZstdEncoding) {
			body := c.Request().Body()
			if len(body) > 0 {
				decompressed, err := decoder.DecodeAll(body, nil)
				if err != nil {
					log.Err(err).Msg("Failed to decompress request")
					return c.Status(fiber.StatusBadRequest).JSON(
						api.NewResponse(map[string]any{},
							fmt.Errorf("failed to decompress zstd data: %w", err)))
				}

				c.Request().SetBody(decompressed)
				c.Request().Header.Del(fiber.HeaderContentEncoding)
				log.Trace().
					Int("compressed_size", len(body)).
					Int("original_size", len(decompressed)).
					Msg("Request body decompressed")
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		if !strings.Contains(strings.ToLower(c.Get(fiber.HeaderAcceptEncoding)), ZstdEncoding) {
			return nil
		}

		responseBody := c.Response().Body()
		if len(responseBody) == 0 {
			return nil
		}

		compressed := encoder.EncodeAll(responseBody, nil)
		c.Response().SetBodyRaw(compressed)
		c.Set(fiber.HeaderContentEncoding, ZstdEncoding)
		c.Set(fiber.HeaderContentLength, strconv.Itoa(len(compressed)))

		log.Trace().
			Int("original_size", len(responseBody)).
			Int("compressed_size", len(compressed)).
			Msg("Response body compressed")
		return nil
	}
}
