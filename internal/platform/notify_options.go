// Package platform sends desktop notifications through each OS's native
// notification service.
package platform

// AppName is reported to the notification service.
const AppName = "ShineyZoom"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown alongside the
	// notification where supported.
	IconPath string
	// ExpireMS overrides the display time. Zero uses the platform default.
	ExpireMS int32
}

const defaultExpireMS = 5000

func (o Options) expire() int32 {
	if o.ExpireMS > 0 {
		return o.ExpireMS
	}
	return defaultExpireMS
}
