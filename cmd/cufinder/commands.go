package main

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	cufinder "github.com/cufinder/cufinder-go"
)

// binding connects an operation to its parameter type and client method.
type binding struct {
	params reflect.Type
	invoke func(ctx context.Context, c *cufinder.Client, params any) (any, error)
}

func bind[P, R any](method func(*cufinder.Client, context.Context, P) (*R, error)) binding {
	return binding{
		params: reflect.TypeOf((*P)(nil)).Elem(),
		invoke: func(ctx context.Context, c *cufinder.Client, params any) (any, error) {
			return method(c, ctx, params.(P))
		},
	}
}

var bindings = map[string]binding{
	cufinder.CodeCUF:  bind((*cufinder.Client).CUF),
	cufinder.CodeLCUF: bind((*cufinder.Client).LCUF),
	cufinder.CodeDTC:  bind((*cufinder.Client).DTC),
	cufinder.CodeDTE:  bind((*cufinder.Client).DTE),
	cufinder.CodeNTP:  bind((*cufinder.Client).NTP),
	cufinder.CodeREL:  bind((*cufinder.Client).REL),
	cufinder.CodeFCL:  bind((*cufinder.Client).FCL),
	cufinder.CodeELF:  bind((*cufinder.Client).ELF),
	cufinder.CodeCAR:  bind((*cufinder.Client).CAR),
	cufinder.CodeFCC:  bind((*cufinder.Client).FCC),
	cufinder.CodeFTS:  bind((*cufinder.Client).FTS),
	cufinder.CodeEPP:  bind((*cufinder.Client).EPP),
	cufinder.CodeFWE:  bind((*cufinder.Client).FWE),
	cufinder.CodeTEP:  bind((*cufinder.Client).TEP),
	cufinder.CodeENC:  bind((*cufinder.Client).ENC),
	cufinder.CodeCEC:  bind((*cufinder.Client).CEC),
	cufinder.CodeCLO:  bind((*cufinder.Client).CLO),
	cufinder.CodeCSE:  bind((*cufinder.Client).CSE),
	cufinder.CodePSE:  bind((*cufinder.Client).PSE),
	cufinder.CodeLBS:  bind((*cufinder.Client).LBS),
	cufinder.CodeBCD:  bind((*cufinder.Client).BCD),
	cufinder.CodeCCP:  bind((*cufinder.Client).CCP),
	cufinder.CodeISC:  bind((*cufinder.Client).ISC),
}

var (
	intPtrType  = reflect.TypeOf((*int)(nil))
	boolPtrType = reflect.TypeOf((*bool)(nil))
	stringsType = reflect.TypeOf([]string(nil))
)

// operationCommands builds one sub-command per catalog entry.
func operationCommands() []*cli.Command {
	ops := cufinder.Operations()
	cmds := make([]*cli.Command, 0, len(ops))
	for _, op := range ops {
		b, ok := bindings[op.Code]
		if !ok {
			panic("cufinder: no command binding for " + op.Code)
		}
		cmds = append(cmds, operationCommand(op, b))
	}
	return cmds
}

func operationCommand(op cufinder.Operation, b binding) *cli.Command {
	required := make(map[string]bool, len(op.Required))
	for _, name := range op.Required {
		required[name] = true
	}

	var flags []cli.Flag
	for i := 0; i < b.params.NumField(); i++ {
		field := b.params.Field(i)
		wire := wireName(field)
		name := flagName(wire)

		var aliases []string
		if wire != name {
			aliases = []string{wire}
		}

		switch field.Type {
		case intPtrType:
			flags = append(flags, &cli.IntFlag{Name: name, Aliases: aliases, Usage: wire})
		case boolPtrType:
			flags = append(flags, &cli.BoolFlag{Name: name, Aliases: aliases, Usage: wire})
		case stringsType:
			flags = append(flags, &cli.StringSliceFlag{Name: name, Aliases: aliases, Usage: wire + " (repeatable)"})
		default:
			flags = append(flags, &cli.StringFlag{Name: name, Aliases: aliases, Usage: wire, Required: required[wire]})
		}
	}

	return &cli.Command{
		Name:  strings.ToLower(op.Code),
		Usage: op.Name,
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg := configFrom(c)
			if cfg == nil {
				return fmt.Errorf("configuration not loaded")
			}

			client, err := cfg.NewClient(cufinder.WithLogger(cfg.NewLogger(c.App.ErrWriter)))
			if err != nil {
				return err
			}

			result, err := b.invoke(c.Context, client, buildParams(c, b.params))
			if err != nil {
				return err
			}
			return writeResult(c, result)
		},
	}
}

// buildParams fills a parameter struct of type typ from the command flags.
func buildParams(c *cli.Context, typ reflect.Type) any {
	v := reflect.New(typ).Elem()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name := flagName(wireName(field))
		if !c.IsSet(name) {
			continue
		}

		switch field.Type {
		case intPtrType:
			n := c.Int(name)
			v.Field(i).Set(reflect.ValueOf(&n))
		case boolPtrType:
			b := c.Bool(name)
			v.Field(i).Set(reflect.ValueOf(&b))
		case stringsType:
			v.Field(i).Set(reflect.ValueOf(c.StringSlice(name)))
		default:
			v.Field(i).SetString(c.String(name))
		}
	}
	return v.Interface()
}

func writeResult(c *cli.Context, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if c.String("output") == "yaml" {
		// Round-trip through JSON so the json tags and raw values shape the YAML.
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		data, err = yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = c.App.Writer.Write(data)
		return err
	}

	_, err = fmt.Fprintf(c.App.Writer, "%s\n", data)
	return err
}

func wireName(field reflect.StructField) string {
	return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
}

func flagName(wire string) string {
	return strings.ReplaceAll(wire, "_", "-")
}
