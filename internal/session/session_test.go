package session

import (
	"errors"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	cases := []struct {
		name      string
		email     string
		password  string
		wantErr   bool
		wantRole  Role
		wantEmail string
	}{
		{"admin_pair", "admin@airvista.pk", "AirVista@2024", false, RoleAdmin, "admin@airvista.pk"},
		{"generic_pair", "sara@example.com", "hunter2", false, RoleUser, "sara@example.com"},
		{"empty_email", "", "hunter2", true, "", ""},
		{"empty_password", "sara@example.com", "", true, "", ""},
		{"both_empty", "", "", true, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := Authenticate(tc.email, tc.password)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Fatalf("err = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate: %v", err)
			}
			if user.Role != tc.wantRole || user.Email != tc.wantEmail {
				t.Fatalf("user = %+v, want role %s email %s", user, tc.wantRole, tc.wantEmail)
			}
		})
	}
}

func TestAuthenticateAdmin_RejectsNonAdmin(t *testing.T) {
	if _, err := AuthenticateAdmin("sara@example.com", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	user, err := AuthenticateAdmin("admin@airvista.pk", "AirVista@2024")
	if err != nil || !user.IsAdmin() {
		t.Fatalf("admin login failed: user=%+v err=%v", user, err)
	}
}

func TestUserApply_MergesNonEmptyFields(t *testing.T) {
	u := User{ID: "USER001", Email: "a@b.pk", FirstName: "John", LastName: "Doe", Phone: "111"}
	merged := u.Apply(Update{FirstName: "Jane", Nationality: "Pakistani"})
	if merged.FirstName != "Jane" || merged.LastName != "Doe" || merged.Phone != "111" {
		t.Fatalf("merge wrong: %+v", merged)
	}
	if merged.Nationality != "Pakistani" || merged.Email != "a@b.pk" {
		t.Fatalf("merge wrong: %+v", merged)
	}
}
