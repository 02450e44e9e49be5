// Copyright (c) 2024 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package playfab_models

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"playfab-models-go/pkg/common"
	"playfab-models-go/pkg/envelope"
	"playfab-models-go/pkg/jsonutil"
	"playfab-models-go/pkg/modelregistry"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// Env is what every command needs from the process
type Env struct {
	Config   common.Config
	Registry *modelregistry.Registry
	In       io.Reader
	Out      io.Writer
}

// Register adds the model commands to cdr
func Register(cdr *subcommands.Commander, env *Env) {
	const group = "models"
	cdr.Register(&ListCmd{env: env}, group)
	cdr.Register(&NormalizeCmd{env: env}, group)
	cdr.Register(&EnumCmd{env: env}, group)
	cdr.Register(&SkeletonCmd{env: env}, group)
}

func (e *Env) render(v any, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", strings.Repeat(" ", e.Config.Indent))
		if err != nil {
			return nil, errors.Wrap(err, "render json")
		}

		return append(data, '\n'), nil
	case formatYAML:
		// go through a JSON tree so YAML keys are the wire keys
		data, err := jsonutil.Encode(v)
		if err != nil {
			return nil, err
		}
		var tree any
		if err = json.Unmarshal(data, &tree); err != nil {
			return nil, errors.Wrap(err, "render yaml")
		}
		var sb strings.Builder
		enc := yaml.NewEncoder(&sb)
		enc.SetIndent(e.Config.Indent)
		if err = enc.Encode(tree); err != nil {
			return nil, errors.Wrap(err, "render yaml")
		}
		if err = enc.Close(); err != nil {
			return nil, errors.Wrap(err, "render yaml")
		}

		return []byte(sb.String()), nil
	}

	return nil, errors.Errorf("unknown format %q", format)
}

func (e *Env) write(data []byte) error {
	_, err := e.Out.Write(data)

	return err
}

// ListCmd prints the records and enumerations of one or all services
type ListCmd struct {
	env     *Env
	service string
}

func (*ListCmd) Name() string     { return "list" }
func (*ListCmd) Synopsis() string { return "list the records and enumerations of each service" }
func (*ListCmd) Usage() string {
	return "list [-service name]:\n  Print one line per record or enumeration: service, kind, name.\n"
}

func (c *ListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.service, "service", "", "only list this service")
}

func (c *ListCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scope := common.NewRootScope(ctx, "playfab-models.list", "")
	defer scope.Finish()

	services := c.env.Registry.Services()
	if c.service != "" {
		services = []string{c.service}
	}

	var sb strings.Builder
	for _, service := range services {
		types, err := c.env.Registry.Types(service)
		if err != nil {
			scope.Log.Errorf("list: %v", err)
			scope.TraceError(err)

			return subcommands.ExitFailure
		}
		enums, err := c.env.Registry.Enums(service)
		if err != nil {
			scope.Log.Errorf("list: %v", err)
			scope.TraceError(err)

			return subcommands.ExitFailure
		}
		for _, name := range types {
			fmt.Fprintf(&sb, "%s\trecord\t%s\n", service, name)
		}
		for _, name := range enums {
			fmt.Fprintf(&sb, "%s\tenum\t%s\n", service, name)
		}
	}
	if err := c.env.write([]byte(sb.String())); err != nil {
		scope.Log.Errorf("list: %v", err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// NormalizeCmd decodes a document permissively and writes it back in canonical form
type NormalizeCmd struct {
	env      *Env
	typeName string
	service  string
	path     string
	envelope bool
	format   string
}

func (*NormalizeCmd) Name() string     { return "normalize" }
func (*NormalizeCmd) Synopsis() string { return "decode a document into a record and re-encode it" }
func (*NormalizeCmd) Usage() string {
	return `normalize -type name [-service name] [-path p] [-envelope] [-format json|yaml] [file]:
  Read a JSON document from file or stdin, decode it into the named record the way
  the SDK does and print the canonical encoding. Comments and trailing commas are
  accepted. When the selected document is an array every element is decoded.
`
}

func (c *NormalizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typeName, "type", "", "record name, e.g. LoginResult")
	f.StringVar(&c.service, "service", c.env.Config.DefaultService, "service the record belongs to")
	f.StringVar(&c.path, "path", "", "gjson path of the sub-document to decode")
	f.BoolVar(&c.envelope, "envelope", false, "input is an API response, decode its data member")
	f.StringVar(&c.format, "format", formatJSON, "output format: json or yaml")
}

func (c *NormalizeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.typeName == "" || f.NArg() > 1 {
		fmt.Fprint(os.Stderr, c.Usage())

		return subcommands.ExitUsageError
	}

	scope := common.NewRootScope(ctx, "playfab-models.normalize", "")
	defer scope.Finish()
	scope.SetAttributes(map[string]string{"service": c.service, "type": c.typeName})

	out, err := c.normalize(scope, f.Arg(0))
	if err != nil {
		scope.Log.Errorf("normalize: %v", err)
		scope.TraceError(err)

		return subcommands.ExitFailure
	}
	if err = c.env.write(out); err != nil {
		scope.Log.Errorf("normalize: %v", err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func (c *NormalizeCmd) normalize(scope *common.Scope, file string) ([]byte, error) {
	input, err := c.readInput(file)
	if err != nil {
		return nil, err
	}
	input = jsonc.ToJSON(input)

	if c.envelope {
		if envelope.IsError(input) {
			apiErr := &envelope.Error{}
			if err = jsonutil.Decode(input, apiErr); err != nil {
				return nil, err
			}

			return nil, apiErr
		}
		if input, err = envelope.Data(input); err != nil {
			return nil, err
		}
	}
	if c.path != "" {
		if input, err = envelope.Get(input, c.path); err != nil {
			return nil, err
		}
	}

	doc := gjson.ParseBytes(input)
	if doc.IsArray() {
		records := make([]any, 0)
		var decodeErr error
		doc.ForEach(func(_, element gjson.Result) bool {
			var record any
			record, decodeErr = c.decode(scope, []byte(element.Raw))

			records = append(records, record)

			return decodeErr == nil
		})
		if decodeErr != nil {
			return nil, decodeErr
		}
		scope.Log.Debugf("decoded %d %s records", len(records), c.typeName)

		return c.env.render(records, c.format)
	}

	record, err := c.decode(scope, input)
	if err != nil {
		return nil, err
	}
	scope.Log.Debugf("decoded %s record", c.typeName)

	return c.env.render(record, c.format)
}

func (c *NormalizeCmd) decode(scope *common.Scope, data []byte) (any, error) {
	child := common.ChildScope(scope.Ctx, "decode")
	defer child.Finish()

	record, err := c.env.Registry.New(c.service, c.typeName)
	if err != nil {
		return nil, err
	}
	if err = jsonutil.Decode(data, record); err != nil {
		child.TraceError(err)

		return nil, err
	}

	return record, nil
}

func (c *NormalizeCmd) readInput(file string) ([]byte, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(c.env.In)

		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(file)

	return data, errors.Wrapf(err, "read %s", file)
}

// EnumCmd prints the wire strings of an enumeration or checks values against it
type EnumCmd struct {
	env      *Env
	typeName string
	service  string
}

func (*EnumCmd) Name() string     { return "enum" }
func (*EnumCmd) Synopsis() string { return "print or check the wire strings of an enumeration" }
func (*EnumCmd) Usage() string {
	return `enum -type name [-service name] [value ...]:
  Without values print the wire strings in declaration order. With values print
  each one followed by ok or unknown; the exit status is 1 if any is unknown.
`
}

func (c *EnumCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typeName, "type", "", "enumeration name, e.g. Currency")
	f.StringVar(&c.service, "service", c.env.Config.DefaultService, "service the enumeration belongs to")
}

func (c *EnumCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.typeName == "" {
		fmt.Fprint(os.Stderr, c.Usage())

		return subcommands.ExitUsageError
	}

	scope := common.NewRootScope(ctx, "playfab-models.enum", "")
	defer scope.Finish()

	table, err := c.env.Registry.Enum(c.service, c.typeName)
	if err != nil {
		scope.Log.Errorf("enum: %v", err)

		return subcommands.ExitFailure
	}

	var sb strings.Builder
	status := subcommands.ExitSuccess
	if f.NArg() == 0 {
		for _, name := range table.Names() {
			sb.WriteString(name + "\n")
		}
	}
	for _, value := range f.Args() {
		if table.Contains(value) {
			sb.WriteString(value + "\tok\n")

			continue
		}
		sb.WriteString(value + "\tunknown\n")
		status = subcommands.ExitFailure
	}
	if err = c.env.write([]byte(sb.String())); err != nil {
		scope.Log.Errorf("enum: %v", err)

		return subcommands.ExitFailure
	}

	return status
}

// SkeletonCmd prints the encoding of an empty record
type SkeletonCmd struct {
	env      *Env
	typeName string
	service  string
	format   string
}

func (*SkeletonCmd) Name() string     { return "skeleton" }
func (*SkeletonCmd) Synopsis() string { return "print the encoding of an empty record" }
func (*SkeletonCmd) Usage() string {
	return "skeleton -type name [-service name] [-format json|yaml]:\n  Print the keys an empty record always carries.\n"
}

func (c *SkeletonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typeName, "type", "", "record name")
	f.StringVar(&c.service, "service", c.env.Config.DefaultService, "service the record belongs to")
	f.StringVar(&c.format, "format", formatJSON, "output format: json or yaml")
}

func (c *SkeletonCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.typeName == "" {
		fmt.Fprint(os.Stderr, c.Usage())

		return subcommands.ExitUsageError
	}

	scope := common.NewRootScope(ctx, "playfab-models.skeleton", "")
	defer scope.Finish()

	record, err := c.env.Registry.New(c.service, c.typeName)
	if err != nil {
		scope.Log.Errorf("skeleton: %v", err)

		return subcommands.ExitFailure
	}
	out, err := c.env.render(record, c.format)
	if err == nil {
		err = c.env.write(out)
	}
	if err != nil {
		scope.Log.Errorf("skeleton: %v", err)

		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
