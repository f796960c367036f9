package instance

import "github.com/skibidoo/storefront/pkg/env"

const defaultID = "local"

// GetID identifies this process in logs: an explicit instance id, the
// platform dyno name or the container hostname.
func GetID() string {
	return env.GetFirst(defaultID, "STOREFRONT_INSTANCE_ID", "DYNO", "HOSTNAME")
}
