package comm

import (
	"testing"
)

func TestComment_HandComment(t *testing.T) {
	tests := []struct {
		name    string
		comment Comment
		text    string
		want    string
	}{
		{
			name:    "commenter",
			comment: Comment{Login: "alice"},
			text:    "@commenter thank you!",
			want:    "@alice thank you!",
		},
		{
			name:    "author",
			comment: Comment{Login: "alice", PRAuthor: "bob"},
			text:    "@commenter approved the pull request of @author",
			want:    "@alice approved the pull request of @bob",
		},
		{
			name:    "reviewers",
			comment: Comment{Login: "alice", Reviewers: []string{"bob", "carol"}},
			text:    "review requested from @reviewers",
			want:    "review requested from @bob, @carol",
		},
		{
			name:    "no-placeholder",
			comment: Comment{Login: "alice"},
			text:    "done",
			want:    "done",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.comment.HandComment(tt.text); got != tt.want {
				t.Errorf("HandComment() = %q, want %q", got, tt.want)
			}
		})
	}
}
