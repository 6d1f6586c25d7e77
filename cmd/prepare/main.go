package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	counties "github.com/paulstuart/covid-counties"
)

var (
	csvFile = counties.CountyCSVFile
	outDir  = counties.DataDir
	gobFile string
	fromGob bool
)

func envDefault(value *string, key string) {
	if s := os.Getenv(key); s != "" {
		*value = s
	}
}

func main() {
	_ = godotenv.Load(".env")
	envDefault(&csvFile, "COUNTIES_CSV")
	envDefault(&outDir, "COUNTIES_OUT")
	envDefault(&gobFile, "COUNTIES_GOB")

	flag.StringVar(&csvFile, "csv", csvFile, "county level covid csv data")
	flag.StringVar(&outDir, "out", outDir, "base directory of the json file tree")
	flag.StringVar(&gobFile, "gob", gobFile, "snapshot of the parsed data (saved after parsing, unless -from-gob)")
	flag.BoolVar(&fromGob, "from-gob", false, "load the parsed data from the -gob snapshot instead of the csv")
	flag.Parse()

	now := time.Now()
	var tree counties.Tree
	var err error
	if fromGob {
		if gobFile == "" {
			log.Fatal("-from-gob requires -gob")
		}
		if err = counties.GobLoad(gobFile, &tree); err != nil {
			log.Fatalf("can't load %q: %v", gobFile, err)
		}
	} else {
		if tree, err = counties.ParseFile(csvFile); err != nil {
			log.Fatalf("can't parse %q: %v", csvFile, err)
		}
		if gobFile != "" {
			if err = counties.GobDump(gobFile, tree); err != nil {
				log.Fatalf("can't save %q: %v", gobFile, err)
			}
		}
	}
	log.Printf("loaded %d states in %s", len(tree), time.Since(now))

	if err = counties.WriteTree(tree, outDir); err != nil {
		log.Fatalf("can't write %q: %v", outDir, err)
	}
	log.Printf("wrote %s in %s", outDir, time.Since(now))
}
