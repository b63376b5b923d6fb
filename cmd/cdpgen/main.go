package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"xelf.org/cdp/gen"
	"xelf.org/cdp/gen/gengo"
	"xelf.org/cdp/pdl"
)

const usage = `usage: cdpgen [flags] <command> [<args>]

Configuration flags:

   -dir        The schema directory holding one '<version>/protocol.json'
               per version token.
   -conf       Path of an optional yaml config file with version, dir, out
               and pkg defaults.
   -cdp        The schema version token, one of 1-2, 1-3 or tot. Any other
               or absent token falls back to tot. The CDP_VERSION
               environment variable applies when neither flag nor config
               set a token.
   -out        The output directory for generated files.
   -pkg        The package name of the generated files.

Code generation commands
   gen         Generates go protocol bindings, one file per domain.

Other commands
   help        Displays this help message.

`

var (
	dirFlag  = flag.String("dir", "", "schema directory path")
	confFlag = flag.String("conf", "cdpgen.yaml", "config file path")
	cdpFlag  = flag.String("cdp", "", "schema version token")
	outFlag  = flag.String("out", "", "output directory path")
	pkgFlag  = flag.String("pkg", "", "output package name")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	args := flag.Args()
	if len(args) == 0 {
		log.Printf("missing command\n\n")
		fmt.Print(usage)
		return
	}
	var err error
	switch cmd := flag.Arg(0); cmd {
	case "gen":
		err = genGo(args[1:])
	case "help":
		fmt.Print(usage)
	default:
		log.Printf("unknown command: %s\n\n", cmd)
		fmt.Print(usage)
	}
	if err != nil {
		log.Fatalf("%s error: %+v\n", flag.Arg(0), err)
	}
}

func genGo(args []string) error {
	conf, err := LoadConf(*confFlag)
	if err != nil {
		return err
	}
	conf = conf.Merge(Conf{
		Version: *cdpFlag, Dir: *dirFlag, Out: *outFlag, Pkg: *pkgFlag,
	})
	if conf.Version == "" {
		conf.Version = os.Getenv("CDP_VERSION")
	}
	conf = conf.Default()
	p, err := pdl.NewLoader(conf.Dir).Load(conf.Version)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(conf.Out, 0755); err != nil {
		return err
	}
	for _, d := range p.Domains {
		if len(args) > 0 && !selected(args, d.Domain) {
			continue
		}
		out := filepath.Join(conf.Out, fmt.Sprintf("%s_gen.go", gen.Snake(d.Domain)))
		g := gengo.NewGen(p, conf.Pkg)
		if err := gengo.WriteDomainFile(g, out, d); err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func selected(args []string, domain string) bool {
	for _, a := range args {
		if a == domain {
			return true
		}
	}
	return false
}
