package app

import (
	"log"
	"os"

	"github.com/gonuts/commander"
)

var (
	allOut bool = true

	// file names
	forestsFile     string
	sourceFile      string
	targetFile      string
	derivationsFile string
	ibm1File        string
	srcEmbFile      string
	tgtEmbFile      string
	srcClusterFile  string
	tgtClusterFile  string
	optionsFile     string
	outputFile      string
	limit           int
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
