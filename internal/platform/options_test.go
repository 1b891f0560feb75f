package platform

import "testing"

func TestOptionsExpire(t *testing.T) {
	if got := (Options{}).expire(); got != defaultExpireMS {
		t.Fatalf("default expire = %d", got)
	}
	if got := (Options{ExpireMS: 1200}).expire(); got != 1200 {
		t.Fatalf("override expire = %d", got)
	}
}
