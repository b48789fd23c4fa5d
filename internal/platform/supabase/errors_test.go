package supabase

import "testing"

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 400, Message: "User already registered"}
	if got, want := err.Error(), "supabase auth: status 400: User already registered"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
