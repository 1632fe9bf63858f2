package config

import (
	"fmt"
	"log"
	"os"

	supa "github.com/supabase-community/supabase-go"
)

// SupabaseClient is the optional datastore client probed by the diagnostic
// endpoint. It stays nil when Supabase is not configured; the video pipeline
// never touches it.
var SupabaseClient *supa.Client

// InitSupabase initializes the Supabase client using environment variables.
// Missing configuration is not an error: the service runs without a
// datastore and the diagnostic endpoint reports it as unavailable.
func InitSupabase() error {
	supabaseURL := GetSupabaseURL()
	supabaseKey := GetSupabaseKey()
	if supabaseURL == "" || supabaseKey == "" {
		log.Println("Supabase not configured; datastore diagnostics disabled.")
		return nil
	}

	client, err := supa.NewClient(supabaseURL, supabaseKey, nil)
	if err != nil {
		return fmt.Errorf("initializing Supabase client: %w", err)
	}

	SupabaseClient = client
	log.Println("Supabase client initialized successfully.")
	return nil
}

// GetSupabaseURL returns the Supabase project URL, or "" when unset.
func GetSupabaseURL() string {
	return os.Getenv("SUPABASE_URL")
}

// GetSupabaseKey returns the API key used for Supabase requests, preferring
// the service key over the anonymous key.
func GetSupabaseKey() string {
	if key := os.Getenv("SUPABASE_SERVICE_KEY"); key != "" {
		return key
	}
	return os.Getenv("SUPABASE_ANON_KEY")
}
