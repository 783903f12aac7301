package redis

import "fmt"

// Key prefix for all foundry data
const keyPrefix = "foundry"

// dataKey returns the namespaced Redis key for a storage key
func dataKey(key string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, key)
}
