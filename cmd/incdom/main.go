// Command incdom converts HTML or markdown files into IncrementalDOM
// build scripts.
//
//	incdom render doc.md            # print the render closure
//	incdom render --calls-only x.html
//	incdom replay doc.md            # run the closure, print the DOM calls
//	incdom tree doc.html            # print the document tree
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("incdom failed")
		os.Exit(1)
	}
}
