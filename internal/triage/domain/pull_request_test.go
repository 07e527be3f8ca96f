package domain

import "testing"

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RepoRef
		wantErr bool
	}{
		{
			name:  "plain owner/name",
			input: "octo-org/widgets",
			want:  RepoRef{Owner: "octo-org", Name: "widgets"},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  octo-org/widgets\t",
			want:  RepoRef{Owner: "octo-org", Name: "widgets"},
		},
		{
			name:    "missing slash",
			input:   "octo-org",
			wantErr: true,
		},
		{
			name:    "too many segments",
			input:   "octo-org/widgets/extra",
			wantErr: true,
		},
		{
			name:    "empty owner",
			input:   "/widgets",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   "octo-org/",
			wantErr: true,
		},
		{
			name:    "blank input",
			input:   "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoRef(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseRepoRef(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoRef(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRepoRef(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasApprovalBy(t *testing.T) {
	reviews := []Review{
		{AuthorLogin: "alice", State: "COMMENTED"},
		{AuthorLogin: "Bot-Approver", State: ReviewApproved},
		{AuthorLogin: "carol", State: "CHANGES_REQUESTED"},
	}

	tests := []struct {
		name  string
		login string
		want  bool
	}{
		{name: "exact login with approval", login: "Bot-Approver", want: true},
		{name: "login compares case-insensitively", login: "bot-approver", want: true},
		{name: "commented is not approved", login: "alice", want: false},
		{name: "changes requested is not approved", login: "carol", want: false},
		{name: "unknown login", login: "mallory", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasApprovalBy(reviews, tt.login); got != tt.want {
				t.Errorf("HasApprovalBy(reviews, %q) = %v, want %v", tt.login, got, tt.want)
			}
		})
	}

	if HasApprovalBy(nil, "anyone") {
		t.Error("HasApprovalBy(nil, ...) = true, want false")
	}
}

func TestMatchesBotAuthor(t *testing.T) {
	tests := []struct {
		name    string
		login   string
		markers []string
		want    bool
	}{
		{
			name:    "stock dependabot login",
			login:   "dependabot[bot]",
			markers: []string{"dependabot"},
			want:    true,
		},
		{
			name:    "preview variant matches the same marker",
			login:   "dependabot-preview[bot]",
			markers: []string{"dependabot"},
			want:    true,
		},
		{
			name:    "match is case-insensitive",
			login:   "Dependabot[bot]",
			markers: []string{"dependabot"},
			want:    true,
		},
		{
			name:    "unrelated login",
			login:   "octocat",
			markers: []string{"dependabot"},
			want:    false,
		},
		{
			name:    "any marker in the list matches",
			login:   "renovate[bot]",
			markers: []string{"dependabot", "renovate"},
			want:    true,
		},
		{
			name:    "empty marker never matches",
			login:   "octocat",
			markers: []string{""},
			want:    false,
		},
		{
			name:    "no markers never matches",
			login:   "dependabot[bot]",
			markers: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesBotAuthor(tt.login, tt.markers); got != tt.want {
				t.Errorf("MatchesBotAuthor(%q, %v) = %v, want %v", tt.login, tt.markers, got, tt.want)
			}
		})
	}
}
