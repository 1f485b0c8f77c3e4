package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okabeach/flat-manager/internal/dates"
)

// parseOptionalQueryDate lê um parâmetro de data da query string.
// Ausente não é erro; presente mas ilegível é.
func parseOptionalQueryDate(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}

	d, err := dates.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
