package view

import "time"

// Banner TTLs. Success notices self-dismiss, delete confirmations clear
// faster, errors stay a little longer but are also user-dismissible.
const (
	SuccessBannerTTL = 5 * time.Second
	DeleteBannerTTL  = 3 * time.Second
	ErrorBannerTTL   = 5 * time.Second
)

// banner is a transient notice with an expiry instant.
type banner struct {
	message string
	expires time.Time
}

// message returns the banner text if it has not expired.
func (b *banner) active(now time.Time) (string, bool) {
	if b == nil || b.message == "" || !now.Before(b.expires) {
		return "", false
	}
	return b.message, true
}
