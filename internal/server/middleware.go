package server

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/hmeasure/pkg/api"
)

// ZstdMiddleware decompresses zstd request bodies and compresses responses
// for clients that accept zstd. Whitelisted routes pass through untouched.
// Bodies that decompress past bodyLimit bytes are rejected with 413, the same
// limit fiber applies to the compressed body; bodyLimit <= 0 means
// fiber.DefaultBodyLimit.
func ZstdMiddleware(whitelistedRoutes []string, bodyLimit int) (fiber.Handler, error) {
	if whitelistedRoutes == nil {
		whitelistedRoutes = []string{api.HealthRoute}
		log.Debug().
			Any("default", whitelistedRoutes).
			Msg("Whitelisted routes not specified, using default whitelist")
	}

	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	// DecodeAll and EncodeAll are safe for concurrent use.
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(bodyLimit)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	return func(c *fiber.Ctx) error {
		if slices.Contains(whitelistedRoutes, c.Path()) {
			return c.Next()
		}

		if strings.EqualFold(c.Get(fiber.HeaderContentEncoding), "zstd") {
			body := c.Request().Body()
			if len(body) > 0 {
				decompressed, err := decoder.DecodeAll(body, nil)
				// A window wider than the limit would need more memory than it allows.
				if errors.Is(err, zstd.ErrDecoderSizeExceeded) ||
					errors.Is(err, zstd.ErrWindowSizeExceeded) ||
					len(decompressed) > bodyLimit {
					log.Warn().
						Int("compressed_size", len(body)).
						Int("body_limit", bodyLimit).
						Msg("Decompressed request exceeds body limit")
					return c.Status(fiber.StatusRequestEntityTooLarge).JSON(
						createResponse(
							map[string]any{},
							fmt.Errorf("decompressed body exceeds the %d byte limit", bodyLimit),
						))
				}
				if err != nil {
					log.Err(err).Msg("Failed to decompress request")
					return c.Status(fiber.StatusBadRequest).JSON(
						createResponse(
							map[string]any{},
							fmt.Errorf("failed to decompress zstd data: %w", err),
						))
				}
				c.Request().SetBody(decompressed)
				log.Trace().
					Int("compressed_size", len(body)).
					Int("original_size", len(decompressed)).
					Msg("Request body decompressed")
			}
			c.Request().Header.Del(fiber.HeaderContentEncoding)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if strings.Contains(strings.ToLower(c.Get(fiber.HeaderAcceptEncoding)), "zstd") {
			responseBody := c.Response().Body()
			if len(responseBody) > 0 {
				compressed := encoder.EncodeAll(responseBody, nil)
				c.Response().SetBody(compressed)
				c.Set(fiber.HeaderContentEncoding, "zstd")
				c.Set(fiber.HeaderContentLength, strconv.Itoa(len(compressed)))

				log.Trace().
					Int("original_size", len(responseBody)).
					Int("compressed_size", len(compressed)).
					Msg("Response body compressed")
			}
		}

		return nil
	}, nil
}
