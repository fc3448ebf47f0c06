package configsdatabase

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	cfg := gormConfig()

	// Without error translation a unique violation surfaces as a raw
	// *pgconn.PgError and the duplicate-slug conflict mapping never fires.
	require.True(t, cfg.TranslateError)
}

func TestGormConfigSilencesQueryLogging(t *testing.T) {
	cfg := gormConfig()
	require.NotNil(t, cfg.Logger)
	require.NotEqual(t, logger.Default, cfg.Logger, "query logging must be silenced")
}
