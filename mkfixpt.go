//go:build ignore

// Command mkfixpt generates the fixed-point types committed in fixtypes.go
// and fixtypes_string.go. Every argument declares one type as NAME=SPEC,
// where SPEC is a sign letter ('s' or 'u'), the number of significant bits
// and a binary exponent after the letter 'e': Int26_6=s26e-6 declares a
// signed type of at least 26 bits scaled by 2**-6. Storage is picked by
// ResolveKind, so a declaration that does not fit a native integer aborts
// the run.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/fixpt/fixpt"
)

var typesTemplate = template.Must(template.New("types").Parse(
	`// Code generated by mkfixpt.go; DO NOT EDIT.

package fixpt
{{ range . }}
// {{ .Name }} is a fixed-point number backed by {{ .BaseType }}; its value
// is the stored integer scaled by 2**{{ .Exp }}.
type {{ .Name }} {{ .BaseType }}

func (x {{ .Name }}) Float32() float32 { return Float32(x, {{ .Exp }}) }
func (x {{ .Name }}) Float64() float64 { return Float64(x, {{ .Exp }}) }

var _ Value = {{ .Name }}(0)
{{ end }}`))

var stringTemplate = template.Must(template.New("string").Parse(
	`// Code generated by mkfixpt.go; DO NOT EDIT.

//go:build !fixpt_nostr

package fixpt
{{ range . }}
func (x {{ .Name }}) String() string { return Text(x, {{ .Exp }}) }

func (x {{ .Name }}) MarshalText() ([]byte, error) { return AppendText(nil, x, {{ .Exp }}), nil }
{{ end }}`))

type fixType struct {
	Name     string
	BaseType string
	Exp      int
}

func fromSpec(arg string) (f fixType) {
	name, spec, found := strings.Cut(arg, "=")
	if !found {
		log.Fatalln("invalid declaration:", arg)
	}
	f.Name = name

	var sign rune
	var width uint
	if _, err := fmt.Sscanf(spec, "%c%de%d", &sign, &width, &f.Exp); err != nil {
		log.Fatalln(arg+":", err)
	}
	if sign != 's' && sign != 'u' {
		log.Fatalln("invalid sign in declaration:", arg)
	}
	kind, err := fixpt.ResolveKind(width, sign == 's')
	if err != nil {
		log.Fatalln(arg+":", err)
	}
	f.BaseType = kind.GoType()
	return
}

func usage() {
	fmt.Printf("Usage: %v NAME=SPEC ...\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	types := make([]fixType, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		types = append(types, fromSpec(arg))
	}

	emit("fixtypes.go", typesTemplate, types)
	emit("fixtypes_string.go", stringTemplate, types)
}

func emit(name string, tmpl *template.Template, types []fixType) {
	source := bytes.NewBuffer(nil)
	if err := tmpl.Execute(source, types); err != nil {
		log.Fatalln(err)
	}
	formatted, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	if err := os.WriteFile(name, formatted, 0644); err != nil {
		log.Fatalln(err)
	}
}
