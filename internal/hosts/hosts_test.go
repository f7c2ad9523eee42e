package hosts

import (
	"reflect"
	"testing"

	"github.com/hostpick/hostpick/internal/testutil"
)

func TestParseConfig(t *testing.T) {
	path := testutil.WriteConfig(t, `
Host *
    User deploy

Host web
    Hostname web.example.com
    Port 2222
    ProxyCommand ssh -W %h:%p jump

Host db db-alias
    Hostname db.internal
`)

	got, err := ParseConfig(path, false)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	want := []Host{
		{Name: "web", User: "deploy", Destination: "web.example.com", Port: "2222", ProxyCommand: "ssh -W %h:%p jump"},
		{Name: "db", Aliases: "db-alias", User: "deploy", Destination: "db.internal"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseConfig = %+v, want %+v", got, want)
	}
}

func TestParseConfig_DestinationFallsBackToName(t *testing.T) {
	path := testutil.WriteConfig(t, `
Host bastion
    User ops
`)

	got, err := ParseConfig(path, false)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d hosts, want 1", len(got))
	}
	if got[0].Destination != "bastion" {
		t.Errorf("Destination = %q, want the host name", got[0].Destination)
	}
}

func TestParseConfig_MergedAliases(t *testing.T) {
	path := testutil.WriteConfig(t, `
Host gw1
    Hostname gate.example.com
    Port 22

Host gw2
    Hostname gate.example.com
    Port 22
`)

	got, err := ParseConfig(path, false)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	// Identical entries collapse into one host with the later name as
	// an alias.
	if len(got) != 1 {
		t.Fatalf("got %d hosts, want 1 merged host", len(got))
	}
	if got[0].Name != "gw1" || got[0].Aliases != "gw2" {
		t.Errorf("merged host = %+v, want gw1 with alias gw2", got[0])
	}
}

func TestSortByName(t *testing.T) {
	hosts := []Host{
		{Name: "zebra"},
		{Name: "Apple"},
		{Name: "mango"},
	}

	SortByName(hosts)

	var names []string
	for _, h := range hosts {
		names = append(names, h.Name)
	}
	want := []string{"Apple", "mango", "zebra"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("sorted names = %v, want %v", names, want)
	}
}

func TestFindByName(t *testing.T) {
	hosts := []Host{
		{Name: "web", Aliases: "frontend, www"},
		{Name: "db"},
	}

	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"web", "web", true},
		{"frontend", "web", true},
		{"www", "web", true},
		{"db", "db", true},
		{"missing", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := FindByName(hosts, tt.query)
			if ok != tt.found {
				t.Fatalf("FindByName(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && got.Name != tt.want {
				t.Errorf("FindByName(%q) = %q, want %q", tt.query, got.Name, tt.want)
			}
		})
	}
}
