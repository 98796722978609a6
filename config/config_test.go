package config

import (
	"gopkg.in/yaml.v2"
	"testing"
)

func TestRepository_unmarshal(t *testing.T) {
	data := `
apiVersion: v1
kind: Repository
metadata:
  name: repo
spec:
  owner: gorda
  repository: gorda.io
  maintainerTeam: maintainers
  port: ":8080"
  logLevel: dev
  webhookSecret: "s3cret"
`
	repo := &Repository{}
	if err := yaml.Unmarshal([]byte(data), repo); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}

	if got := repo.GetFullName(); got != "gorda/gorda.io" {
		t.Errorf("GetFullName() = %q, want gorda/gorda.io", got)
	}
	if repo.Spec.Port != ":8080" {
		t.Errorf("port = %q, want :8080", repo.Spec.Port)
	}
	if repo.Spec.WebhookSecret != "s3cret" {
		t.Errorf("webhookSecret = %q, want s3cret", repo.Spec.WebhookSecret)
	}
}
