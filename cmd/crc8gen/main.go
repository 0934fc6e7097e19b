// crc8gen writes Go source files containing precomputed CRC-8 lookup
// tables, for use with go:generate.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/embedded-go/crc8/gen"
)

var polyStr = flag.String("poly", "0x07", "generator polynomial, low 8 bits, leading x^8 term implicit")

var pkgName = flag.String("pkg", "main", "package name for the generated file")

var varName = flag.String("var", "table", "name of the generated table variable")

var doc = flag.String("doc", "", "doc string appended to the table's comment")

var outFile = flag.String("o", "", "output filename, stdout if empty")

func main() {
	flag.Parse()

	poly, err := strconv.ParseUint(*polyStr, 0, 8)
	if err != nil {
		log.Fatal(errors.Wrap(err, "parse polynomial"))
	}

	w := os.Stdout
	if *outFile != "" {
		w, err = os.Create(*outFile)
		if err != nil {
			log.Fatal(errors.Wrap(err, "create output file"))
		}
		defer w.Close()
	}

	if err := gen.WriteTable(w, *pkgName, *varName, uint8(poly), *doc); err != nil {
		log.Fatal(err)
	}

	if *outFile != "" {
		log.WithFields(log.Fields{
			"poly": fmt.Sprintf("0x%02X", poly),
			"pkg":  *pkgName,
			"var":  *varName,
			"file": *outFile,
		}).Info("wrote lookup table")
	}
}
