// Package timezone keeps the single location every timestamp is rendered in.
//
// Call Init once at start-up with APP_TIMEZONE (for example "Asia/Manila"):
//
//	timezone.Init(cfg.App.Timezone)
//	now := timezone.Now()
//	formatted := timezone.Format(now, time.RFC3339)
//
// Until Init succeeds, UTC is used.
package timezone
