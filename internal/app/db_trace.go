package app

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/gudlft-booking/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel/attribute"
)

const maxTracedQueryLength = 256

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// dbTraceOptions tags every startup query span with the store and the portal data source.
func dbTraceOptions(cfg config.Config) []otelsql.Option {
	return []otelsql.Option{
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
		otelsql.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("gudlft.data_source", cfg.DataSource),
			attribute.Bool("gudlft.bootstrap_seed", cfg.DBBootstrapSeed),
		),
	}
}

// formatDBQueryForTrace collapses whitespace; the seed INSERT carries one
// placeholder group per record, so long statements are cut short.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
