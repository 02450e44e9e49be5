// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package playfab_models

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"playfab-models-go/pkg/common"
	"playfab-models-go/pkg/modelregistry"
)

func newTestEnv(in string) (*Env, *bytes.Buffer) {
	out := &bytes.Buffer{}

	return &Env{
		Config:   common.Config{DefaultService: "matchmaker", Indent: 2},
		Registry: modelregistry.Default(),
		In:       strings.NewReader(in),
		Out:      out,
	}, out
}

func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))

	return cmd.Execute(context.Background(), f)
}

func TestListService(t *testing.T) {
	env, out := newTestEnv("")

	status := run(t, &ListCmd{env: env}, "-service", "matchmaker")

	assert.Equal(t, subcommands.ExitSuccess, status)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 13)
	assert.Contains(t, lines, "matchmaker\trecord\tStartGameResponse")
	assert.Contains(t, lines, "matchmaker\tenum\tRegion")
}

func TestListUnknownService(t *testing.T) {
	env, out := newTestEnv("")

	status := run(t, &ListCmd{env: env}, "-service", "economy")

	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Empty(t, out.String())
}

func TestNormalizeStdin(t *testing.T) {
	// Arrange
	input := `{
		// server handed out by the matchmaker
		"GameID": "g1",
		"ServerPort": "not a port",
		"ServerPublicDNSName": "host.example",
	}`
	env, out := newTestEnv(input)

	// Act
	status := run(t, &NormalizeCmd{env: env}, "-type", "StartGameResponse")

	// Assert
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.JSONEq(t, `{"GameID":"g1","ServerPort":0,"ServerPublicDNSName":"host.example"}`, out.String())
}

func TestNormalizeFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "title.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"Keys":["a","b"],"Extra":true}`), 0o600))
	env, out := newTestEnv("")

	status := run(t, &NormalizeCmd{env: env}, "-service", "client", "-type", "GetTitleDataRequest", file)

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.JSONEq(t, `{"Keys":["a","b"]}`, out.String())
}

func TestNormalizeEnvelope(t *testing.T) {
	env, out := newTestEnv(`{"code":200,"status":"OK","data":{"GameID":"x","ServerPort":7777}}`)

	status := run(t, &NormalizeCmd{env: env}, "-type", "StartGameResponse", "-envelope")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.JSONEq(t, `{"GameID":"x","ServerPort":7777}`, out.String())
}

func TestNormalizeEnvelopeError(t *testing.T) {
	body := `{"code":400,"status":"BadRequest","error":"InvalidParams","errorCode":1000,"errorMessage":"bad"}`
	env, out := newTestEnv(body)

	status := run(t, &NormalizeCmd{env: env}, "-type", "StartGameResponse", "-envelope")

	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Empty(t, out.String())
}

func TestNormalizePathArray(t *testing.T) {
	env, out := newTestEnv(`{"code":200,"data":{"Games":[{"GameID":"a"},{"GameID":"b","ServerPort":1}]}}`)

	status := run(t, &NormalizeCmd{env: env}, "-type", "StartGameResponse", "-envelope", "-path", "Games")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.JSONEq(t, `[{"GameID":"a","ServerPort":0},{"GameID":"b","ServerPort":1}]`, out.String())
}

func TestNormalizeUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{name: "missing type", args: nil, want: subcommands.ExitUsageError},
		{name: "unknown type", args: []string{"-type", "NoSuchRecord"}, want: subcommands.ExitFailure},
		{name: "bad format", args: []string{"-type", "StartGameResponse", "-format", "toml"}, want: subcommands.ExitFailure},
		{name: "missing path", args: []string{"-type", "StartGameResponse", "-path", "nope"}, want: subcommands.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := newTestEnv(`{"GameID":"a"}`)

			assert.Equal(t, tt.want, run(t, &NormalizeCmd{env: env}, tt.args...))
		})
	}
}

func TestEnumNames(t *testing.T) {
	env, out := newTestEnv("")

	status := run(t, &EnumCmd{env: env}, "-type", "Region")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "USCentral\nUSEast\nEUWest\nSingapore\nJapan\nBrazil\nAustralia\n", out.String())
}

func TestEnumCheck(t *testing.T) {
	env, out := newTestEnv("")

	status := run(t, &EnumCmd{env: env}, "-type", "region", "EUWest", "euwest")

	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Equal(t, "EUWest\tok\neuwest\tunknown\n", out.String())
}

func TestSkeletonYAML(t *testing.T) {
	env, out := newTestEnv("")

	status := run(t, &SkeletonCmd{env: env}, "-type", "StartGameResponse", "-format", "yaml")

	require.Equal(t, subcommands.ExitSuccess, status)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, map[string]any{"ServerPort": 0}, got)
}

func TestSkeletonJSON(t *testing.T) {
	env, out := newTestEnv("")

	status := run(t, &SkeletonCmd{env: env}, "-type", "VirtualCurrencyRechargeTime")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "\n  \"RechargeMax\": 0,")
	assert.Contains(t, out.String(), `"SecondsToRecharge": 0`)
}

func TestRegisterDispatch(t *testing.T) {
	env, out := newTestEnv("")
	top := flag.NewFlagSet("playfab-models", flag.ContinueOnError)
	cdr := subcommands.NewCommander(top, "playfab-models")
	Register(cdr, env)
	require.NoError(t, top.Parse([]string{"enum", "-service", "matchmaker", "-type", "Region", "Japan"}))

	status := cdr.Execute(context.Background())

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Japan\tok\n", out.String())
}
