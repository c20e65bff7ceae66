package commands

import (
	"strings"

	"go.uber.org/zap"

	"ibdesk/internal/backoffice"
	"ibdesk/internal/config"
	"ibdesk/internal/search"
)

// newClient собирает клиент back-office API из конфига.
// CLI пишет результат в Out, поэтому логгер здесь тихий.
func newClient(cfg *config.Config) *backoffice.Client {
	return backoffice.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, zap.NewNop().Sugar())
}

// parseFilters разбирает аргументы вида key=value в фильтры поиска.
// Ключ не из allowed считается ошибкой использования команды.
func parseFilters(args []string, allowed ...string) (search.Filters, error) {
	f := search.Filters{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" || v == "" {
			return nil, ErrUsage
		}
		found := false
		for _, name := range allowed {
			if k == name {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrUsage
		}
		f[k] = v
	}
	return f, nil
}
