package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Gurux/gxcommon-go"
	"github.com/baekgaard/peyetribe"
	"golang.org/x/text/language"
)

var (
	host  = flag.String("h", "", "Tracker host name")
	port  = flag.Int("p", 0, "Tracker port")
	count = flag.Int("n", 100, "Number of frames to stream")
	t     = flag.String("t", "", "Trace level.")
	lang  = flag.String("lang", "", "Used language.")
)

func CurrentLanguage() language.Tag {
	langEnv := os.Getenv("LANG")
	if langEnv == "" {
		return language.AmericanEnglish
	}
	langEnv = strings.Split(langEnv, ".")[0]
	tag, err := language.Parse(langEnv)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func main() {
	flag.Parse()

	tracker := peyetribe.New(*host, *port)
	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error parsing language:", err)
			return
		}
		tracker.Localize(tag)
	} else {
		tracker.Localize(CurrentLanguage())
	}

	tracker.SetOnError(func(tr *peyetribe.EyeTribe, err error) {
		fmt.Fprintln(os.Stderr, "error:", err)
	})

	tracker.SetOnStateChange(func(tr *peyetribe.EyeTribe, e gxcommon.MediaStateEventArgs) {
		fmt.Fprintf(os.Stderr, "State change: %s\n", e.State().String())
	})

	tracker.SetOnTrace(func(tr *peyetribe.EyeTribe, e gxcommon.TraceEventArgs) {
		fmt.Fprintf(os.Stderr, "Trace: %s\n", e.String())
	})

	if *t != "" {
		tl, err := gxcommon.TraceLevelParse(*t)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
		if err := tracker.SetTrace(tl); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
	}

	if err := tracker.Connect(); err != nil {
		fmt.Fprintln(os.Stderr, "error returned:", err)
		return
	}
	defer func() {
		if err := tracker.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close failed:", err)
		}
	}()

	// One pulled frame first, then stream.
	if _, err := tracker.Next(true); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}

	fmt.Println(peyetribe.FrameHeader)

	if err := tracker.PushMode(nil); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}
	for i := 0; i < *count; i++ {
		f, err := tracker.Next(true)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
		fmt.Println(f)
	}
	if err := tracker.PullMode(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
}
