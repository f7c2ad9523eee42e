package sshconfig

import "testing"

func TestParseKeyword(t *testing.T) {
	tests := []struct {
		name string
		want Keyword
		ok   bool
	}{
		{"Host", KeywordHost, true},
		{"host", KeywordHost, true},
		{"HOST", KeywordHost, true},
		{"Hostname", KeywordHostname, true},
		{"hostname", KeywordHostname, true},
		{"Include", KeywordInclude, true},
		{"ProxyCommand", KeywordProxyCommand, true},
		{"proxyjump", KeywordProxyJump, true},
		{"IdentityFile", KeywordIdentityFile, true},
		{"NotARealDirective", KeywordUnknown, false},
		{"", KeywordUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKeyword(tt.name)
			if ok != tt.ok {
				t.Fatalf("ParseKeyword(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseKeyword(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeywordString(t *testing.T) {
	if got := KeywordHostname.String(); got != "Hostname" {
		t.Errorf("String() = %q, want %q", got, "Hostname")
	}
	if got := KeywordProxyCommand.String(); got != "ProxyCommand" {
		t.Errorf("String() = %q, want %q", got, "ProxyCommand")
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  Entry
		valid bool
	}{
		{
			name:  "space separated",
			line:  "Hostname example.com",
			want:  Entry{Keyword: KeywordHostname, Value: "example.com"},
			valid: true,
		},
		{
			name:  "equals separated",
			line:  "Hostname=example.com",
			want:  Entry{Keyword: KeywordHostname, Value: "example.com"},
			valid: true,
		},
		{
			name:  "equals with spaces",
			line:  "Hostname = example.com",
			want:  Entry{Keyword: KeywordHostname, Value: "example.com"},
			valid: true,
		},
		{
			name:  "tab separated",
			line:  "Port\t2222",
			want:  Entry{Keyword: KeywordPort, Value: "2222"},
			valid: true,
		},
		{
			name:  "case insensitive key",
			line:  "hostname example.com",
			want:  Entry{Keyword: KeywordHostname, Value: "example.com"},
			valid: true,
		},
		{
			name:  "value with internal spaces",
			line:  "ProxyCommand ssh -W %h:%p jump",
			want:  Entry{Keyword: KeywordProxyCommand, Value: "ssh -W %h:%p jump"},
			valid: true,
		},
		{
			name:  "unknown key preserved",
			line:  "FrobnicateLevel 9",
			want:  Entry{Keyword: KeywordUnknown, RawKey: "FrobnicateLevel", Value: "9"},
			valid: true,
		},
		{
			name:  "bare word",
			line:  "Hostname",
			valid: false,
		},
		{
			name:  "leading separator",
			line:  "=value",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifyLine(tt.line)
			if ok != tt.valid {
				t.Fatalf("classifyLine(%q) ok = %v, want %v", tt.line, ok, tt.valid)
			}
			if !tt.valid {
				return
			}
			if got != tt.want {
				t.Errorf("classifyLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
