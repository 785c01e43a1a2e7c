package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/five82/egcctl/egcapi"
)

const testDocument = `{
  "server": {
    "capabilityFlags": 5,
    "featureFlags": 63,
    "isCommentaryActive": false,
    "isRecording": false,
    "isRunning": true,
    "isStreaming": true,
    "numScenes": 4,
    "selectedSceneIndex": 1
  },
  "client": {"startRecording": false, "stopRecording": false}
}
`

type cliTestEnv struct {
	documentPath string
	configPath   string
}

func setupCLITestEnv(t *testing.T, document string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)

	docPath := filepath.Join(base, "EGCAPILite.json")
	if err := os.WriteFile(docPath, []byte(document), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	configPath := filepath.Join(base, "config.toml")
	if err := os.WriteFile(configPath, []byte("flashback_seconds = 45\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return &cliTestEnv{documentPath: docPath, configPath: configPath}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--config", env.configPath, "--document", env.documentPath}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}

func readDocument(t *testing.T, env *cliTestEnv) gjson.Result {
	t.Helper()
	data, err := os.ReadFile(env.documentPath)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("document is not valid JSON:\n%s", data)
	}
	return gjson.ParseBytes(data)
}

func TestStatusCommand_Table(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, env.documentPath)
	requireContains(t, out, "Streaming")
	requireContains(t, out, "1/4")
	requireContains(t, out, "stream_command, screenshot")
}

func TestStatusCommand_JSON(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	out, _, err := runCLI(t, env, "status", "--json")
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}
	var got statusOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode status json: %v\n%s", err, out)
	}
	if got.Document != env.documentPath {
		t.Fatalf("document = %q, want %q", got.Document, env.documentPath)
	}
	if !got.Running || !got.Streaming || got.Recording {
		t.Fatalf("status = %+v, want running and streaming only", got.Status)
	}
	if got.Capabilities.Mask() != 5 || got.Features.Mask() != 63 {
		t.Fatalf("masks = %d/%d, want 5/63", got.Capabilities.Mask(), got.Features.Mask())
	}
	if got.ModifiedAt == nil {
		t.Fatalf("modified_at missing")
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &keys); err != nil {
		t.Fatalf("decode status keys: %v", err)
	}
	for _, key := range []string{"document", "modified_at", "commentary_active", "num_scenes", "selected_scene_index"} {
		if _, ok := keys[key]; !ok {
			t.Fatalf("status json missing %q: %s", key, out)
		}
	}
	for key := range keys {
		if strings.ToLower(key) != key {
			t.Fatalf("status json key %q is not snake_case", key)
		}
	}
}

func TestCapabilitiesCommand(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	out, _, err := runCLI(t, env, "capabilities", "--json")
	if err != nil {
		t.Fatalf("capabilities --json: %v", err)
	}
	var got capabilitiesOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode capabilities json: %v", err)
	}
	want := egcapi.Flags{StreamCommand: true, Screenshot: true}
	if got.Capabilities != want {
		t.Fatalf("capabilities = %+v, want %+v", got.Capabilities, want)
	}
	if got.CapabilityMask != 5 || got.FeatureMask != 63 {
		t.Fatalf("masks = %d/%d, want 5/63", got.CapabilityMask, got.FeatureMask)
	}

	out, _, err = runCLI(t, env, "caps")
	if err != nil {
		t.Fatalf("caps: %v", err)
	}
	requireContains(t, out, "live_commentary")
	requireContains(t, out, "mask")
}

func TestRequestCommands(t *testing.T) {
	cases := []struct {
		args    []string
		key     string
		message string
	}{
		{[]string{"record", "start"}, "client.startRecording", "Recording start requested"},
		{[]string{"record", "toggle"}, "client.startRecording", "Recording toggle requested"},
		{[]string{"stream", "stop"}, "client.stopStreaming", "Streaming stop requested"},
		{[]string{"stream", "toggle"}, "client.stopStreaming", "Streaming toggle requested"},
		{[]string{"commentary", "on"}, "client.activateCommentary", "Live commentary activation requested"},
		{[]string{"commentary", "toggle"}, "client.activateCommentary", "Live commentary toggle requested"},
		{[]string{"screenshot"}, "client.saveScreenshot", "Screenshot requested"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, "_"), func(t *testing.T) {
			env := setupCLITestEnv(t, testDocument)
			out, _, err := runCLI(t, env, tc.args...)
			if err != nil {
				t.Fatalf("%v: %v", tc.args, err)
			}
			requireContains(t, out, tc.message)
			if got := readDocument(t, env).Get(tc.key); got.Type != gjson.True {
				t.Fatalf("%s = %s, want true", tc.key, got.Raw)
			}
		})
	}
}

func TestFlashbackCommand(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)

	out, _, err := runCLI(t, env, "flashback")
	if err != nil {
		t.Fatalf("flashback: %v", err)
	}
	requireContains(t, out, "45s")
	doc := readDocument(t, env)
	if !doc.Get("client.saveFlashbackBuffer").Bool() {
		t.Fatalf("saveFlashbackBuffer not set")
	}
	if got := doc.Get("client.saveFlashbackBufferSeconds").Int(); got != 45 {
		t.Fatalf("saveFlashbackBufferSeconds = %d, want 45", got)
	}

	if _, _, err := runCLI(t, env, "flashback", "30"); err != nil {
		t.Fatalf("flashback 30: %v", err)
	}
	if got := readDocument(t, env).Get("client.saveFlashbackBufferSeconds").Int(); got != 30 {
		t.Fatalf("saveFlashbackBufferSeconds = %d, want 30", got)
	}

	if _, _, err := runCLI(t, env, "flashback", "soon"); err == nil {
		t.Fatalf("flashback soon: expected error")
	}
}

func TestSceneCommand(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)

	out, _, err := runCLI(t, env, "scene")
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	if strings.TrimSpace(out) != "1/4" {
		t.Fatalf("scene output = %q, want 1/4", out)
	}

	// Indexes past numScenes are written as-is.
	if _, _, err := runCLI(t, env, "scene", "9"); err != nil {
		t.Fatalf("scene 9: %v", err)
	}
	doc := readDocument(t, env)
	if !doc.Get("client.selectScene").Bool() || doc.Get("client.selectSceneIndex").Int() != 9 {
		t.Fatalf("client = %s, want selectScene true index 9", doc.Get("client").Raw)
	}

	if _, _, err := runCLI(t, env, "scene", "two"); err == nil || !strings.Contains(err.Error(), "invalid scene index") {
		t.Fatalf("scene two error = %v, want invalid scene index", err)
	}
}

func TestPathCommand(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	out, stderr, err := runCLI(t, env, "path")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if strings.TrimSpace(out) != env.documentPath {
		t.Fatalf("path = %q, want %q", out, env.documentPath)
	}
	if stderr != "" {
		t.Fatalf("stderr = %q, want empty", stderr)
	}

	if err := os.Remove(env.documentPath); err != nil {
		t.Fatalf("remove document: %v", err)
	}
	_, stderr, err = runCLI(t, env, "path")
	if err != nil {
		t.Fatalf("path without document: %v", err)
	}
	requireContains(t, stderr, "does not exist")
}

func TestMissingDocument(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	env.documentPath = filepath.Join(t.TempDir(), "missing.json")
	_, _, err := runCLI(t, env, "status")
	if !errors.Is(err, egcapi.ErrDocumentNotFound) {
		t.Fatalf("status error = %v, want ErrDocumentNotFound", err)
	}
	requireContains(t, err.Error(), "Game Capture")
}

func TestRequestPreservesOtherFields(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	before := readDocument(t, env).Get("server").Raw
	if _, _, err := runCLI(t, env, "record", "stop"); err != nil {
		t.Fatalf("record stop: %v", err)
	}
	if after := readDocument(t, env).Get("server").Raw; after != before {
		t.Fatalf("server section changed:\nbefore %s\nafter  %s", before, after)
	}
}

func TestInvalidLogFormatFailsCommand(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	if err := os.WriteFile(env.configPath, []byte("log_format = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	before := readDocument(t, env).Raw

	_, _, err := runCLI(t, env, "record", "start")
	if err == nil || !strings.Contains(err.Error(), "init logger") {
		t.Fatalf("record start error = %v, want init logger error", err)
	}
	if after := readDocument(t, env).Raw; after != before {
		t.Fatalf("document written despite logger error")
	}
}

func TestWatchReportsUnopenableLogFile(t *testing.T) {
	env := setupCLITestEnv(t, testDocument)
	logPath := filepath.Join(t.TempDir(), "missing-dir", "watch.log")
	_, _, err := runCLI(t, env, "watch", "--log-file", logPath)
	if err == nil || !strings.Contains(err.Error(), "open log file") {
		t.Fatalf("watch error = %v, want open log file error", err)
	}
}
