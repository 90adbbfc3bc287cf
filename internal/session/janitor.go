package session

import (
	"log"
	"time"
)

// StartJanitor purges abandoned sessions in the background so a user
// who walked away mid-dialogue starts fresh next time.
func StartJanitor(repo Repository, ttl, interval time.Duration) {
	go func() {
		log.Println("session janitor started")
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if n := repo.PurgeStale(ttl); n > 0 {
				log.Printf("🗑️ purged %d stale session(s)", n)
			}
		}
	}()
}
