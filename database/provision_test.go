package database

import (
	"errors"
	"strings"
	"testing"
)

func TestEvaluateSetup(t *testing.T) {
	tests := []struct {
		name        string
		missing     []string
		markerRows  int64
		wantNeeds   bool
		wantReason  string
		wantMissing int
	}{
		{
			name:        "fresh store",
			missing:     []string{"users", "packages", "bookings"},
			markerRows:  0,
			wantNeeds:   true,
			wantReason:  "missing storage structures",
			wantMissing: 3,
		},
		{
			name:        "partial provisioning",
			missing:     []string{"testimonials"},
			markerRows:  0,
			wantNeeds:   true,
			wantReason:  "missing storage structures",
			wantMissing: 1,
		},
		{
			name:       "marker probe failed",
			missing:    nil,
			markerRows: -1,
			wantNeeds:  true,
			wantReason: "setup marker probe failed",
		},
		{
			name:       "already seeded",
			missing:    nil,
			markerRows: 5,
			wantNeeds:  false,
			wantReason: "already set up",
		},
		{
			name:       "tables exist but unseeded",
			missing:    nil,
			markerRows: 0,
			wantNeeds:  true,
			wantReason: "structures present but setup never completed",
		},
		{
			// A first run migrated every table and seeded reference data but
			// died before creating the admin. The admin marker is still absent,
			// so the retry must run rather than short-circuit.
			name:       "retry after a failed later seed step",
			missing:    nil,
			markerRows: 0,
			wantNeeds:  true,
			wantReason: "structures present but setup never completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := evaluateSetup(tt.missing, tt.markerRows)

			if status.NeedsSetup != tt.wantNeeds {
				t.Fatalf("NeedsSetup = %v, want %v", status.NeedsSetup, tt.wantNeeds)
			}
			if status.Reason != tt.wantReason {
				t.Fatalf("Reason = %q, want %q", status.Reason, tt.wantReason)
			}
			if len(status.MissingTables) != tt.wantMissing {
				t.Fatalf("MissingTables = %v, want %d entries", status.MissingTables, tt.wantMissing)
			}
		})
	}
}

func TestProvisionErrorNamesStep(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := &ProvisionError{Step: "seed settings", Err: cause}

	if !strings.Contains(err.Error(), "seed settings") {
		t.Fatalf("expected step name in error, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected ProvisionError to unwrap to its cause")
	}
}

func TestAdminSeedRunsLast(t *testing.T) {
	steps := provisionSteps()
	if len(steps) == 0 {
		t.Fatal("expected at least one provisioning step")
	}
	if got := steps[len(steps)-1].name; got != "seed admin" {
		t.Fatalf("final step = %q, want %q; the admin row marks completed setup", got, "seed admin")
	}
}

func TestRunProvisioningWithoutStore(t *testing.T) {
	restore := DB
	DB = nil
	defer func() { DB = restore }()

	status, err := RunProvisioning()
	if err == nil {
		t.Fatal("expected an error when the store is unreachable")
	}
	var provisionErr *ProvisionError
	if !errors.As(err, &provisionErr) {
		t.Fatalf("expected ProvisionError, got %T", err)
	}
	if !status.NeedsSetup {
		t.Fatal("expected status to report setup still needed")
	}
}
