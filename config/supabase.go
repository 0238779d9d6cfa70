package config

import (
	"log"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient connects to the hosted project with the service-role
// key; row-level security is bypassed, so ownership checks live in the
// handlers. The process cannot serve requests without a store, hence the
// hard exit.
func NewSupabaseClient(cfg *Config) *supa.Client {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		log.Fatalf("Failed to create Supabase client: %v", err)
	}
	return client
}
