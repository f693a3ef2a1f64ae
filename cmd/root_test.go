package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// executeCommand runs the root command against a fresh instance with output
// captured, the way main would minus the process exit.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := rootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

// newDumpServer serves a fixed JMX dump body and returns the loopback host
// and port it listens on.
func newDumpServer(t *testing.T, body string) (host, port string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parsing test server URL: %v", err)
	}
	host, port, err = net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("splitting test server address %q: %v", u.Host, err)
	}
	return host, port
}

func entry(table, region string, count int) string {
	return fmt.Sprintf(`    "Namespace_default_table_%s_region_%s_metric_getCount" : %d,`, table, region, count)
}

func TestRootCommand_TextOutput(t *testing.T) {
	dump := strings.Join([]string{
		`{`,
		entry("foo", "aaa111", 42),
		entry("bar", "bbb222", 7),
		entry("foo", "ccc333", 0),
		`    "Namespace_default_table_foo_region_aaa111_metric_scanCount" : 9,`,
		`}`,
	}, "\n")
	host, port := newDumpServer(t, dump)

	stdout, _, err := executeCommand(t, "--port", port, host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := host + ":\n" +
		"      1 bar\n" +
		"      2 foo\n" +
		"\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRootCommand_EmptyDump(t *testing.T) {
	host, port := newDumpServer(t, `{ "beans": [] }`)

	stdout, _, err := executeCommand(t, "--port", port, host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := host + ":\n\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRootCommand_FailedServerDoesNotFailRun(t *testing.T) {
	host, port := newDumpServer(t, entry("foo", "aaa111", 1))

	// Nothing listens on 127.0.0.2 at the test server's port, so the
	// second target is refused while the first succeeds.
	stdout, _, err := executeCommand(t, "--port", port, host, "127.0.0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocks := strings.Split(strings.TrimSuffix(stdout, "\n\n"), "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("got %d report blocks, want 2:\n%s", len(blocks), stdout)
	}
	if !strings.HasPrefix(blocks[0], host+":") {
		t.Errorf("first block should be %s, got:\n%s", host, blocks[0])
	}
	if !strings.Contains(blocks[0], "      1 foo") {
		t.Errorf("first block missing histogram row:\n%s", blocks[0])
	}
	if !strings.HasPrefix(blocks[1], "127.0.0.2:") {
		t.Errorf("second block should be 127.0.0.2, got:\n%s", blocks[1])
	}
	if !strings.Contains(blocks[1], "fetch failed:") {
		t.Errorf("second block missing failure line:\n%s", blocks[1])
	}
}

func TestRootCommand_StrictFailsOnUnreachableServer(t *testing.T) {
	host, port := newDumpServer(t, entry("foo", "aaa111", 1))

	_, _, err := executeCommand(t, "--port", port, "--strict", host, "127.0.0.2")
	if err == nil {
		t.Fatal("expected an error with --strict and a failed server")
	}
	if got, want := err.Error(), "1 of 2 servers failed"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestRootCommand_StrictPassesWhenAllSucceed(t *testing.T) {
	host, port := newDumpServer(t, entry("foo", "aaa111", 1))

	if _, _, err := executeCommand(t, "--port", port, "--strict", host); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRootCommand_NoArgsShowsUsage(t *testing.T) {
	_, stderr, err := executeCommand(t)
	if err == nil {
		t.Fatal("expected an error when no servers are given")
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr should contain usage text, got:\n%s", stderr)
	}
}

func TestRootCommand_InvalidHostname(t *testing.T) {
	_, _, err := executeCommand(t, "bad host!")
	if err == nil {
		t.Fatal("expected an error for an invalid hostname")
	}
	if !strings.Contains(err.Error(), "invalid server") {
		t.Errorf("error should name the invalid server, got: %v", err)
	}
}

func TestRootCommand_UnknownOutputFormat(t *testing.T) {
	_, _, err := executeCommand(t, "-o", "yaml", "rs1.example.com")
	if err == nil {
		t.Fatal("expected an error for an unknown output format")
	}
	if !strings.Contains(err.Error(), `unknown output format "yaml"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRootCommand_JSONOutput(t *testing.T) {
	dump := strings.Join([]string{
		entry("events", "aaa111", 3),
		entry("events", "bbb222", 5),
	}, "\n")
	host, port := newDumpServer(t, dump)

	stdout, _, err := executeCommand(t, "--port", port, "-o", "json", host, "127.0.0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []struct {
		Server string         `json:"server"`
		Port   int            `json:"port"`
		Tables map[string]int `json:"tables"`
		Error  string         `json:"error"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, stdout)
	}

	if len(got) != 2 {
		t.Fatalf("got %d reports, want 2", len(got))
	}
	if got[0].Server != host {
		t.Errorf("reports[0].Server = %q, want %q", got[0].Server, host)
	}
	if diff := cmp.Diff(map[string]int{"events": 2}, got[0].Tables); diff != "" {
		t.Errorf("reports[0].Tables mismatch (-want +got):\n%s", diff)
	}
	if got[0].Error != "" {
		t.Errorf("reports[0].Error = %q, want empty", got[0].Error)
	}
	if got[1].Server != "127.0.0.2" {
		t.Errorf("reports[1].Server = %q, want 127.0.0.2", got[1].Server)
	}
	if got[1].Error == "" {
		t.Error("reports[1].Error should describe the failure")
	}
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	host, port := newDumpServer(t, entry("foo", "aaa111", 1))

	stdout, stderr, err := executeCommand(t, "--port", port, "-v", host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "fetching") {
		t.Errorf("verbose mode should log progress to stderr, got:\n%s", stderr)
	}
	if strings.Contains(stdout, "fetching") {
		t.Errorf("progress logging leaked into stdout:\n%s", stdout)
	}
}
