package utils

import (
	"context"

	"github.com/pkg/browser"

	"github.com/David-OConnor/bio-apis/pkg/middleware/logger"
)

// OpenBrowser points the user's default browser at url. Nothing is read back;
// failures are logged and returned so callers can surface them if they care.
func OpenBrowser(ctx context.Context, url string) error {
	if err := browser.OpenURL(url); err != nil {
		logger.Errorf(ctx, "open browser for %s: %+v", url, err)
		return err
	}
	return nil
}
