package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/rpsvision/minusone/detect"
	"github.com/rpsvision/minusone/images"
	"github.com/rpsvision/minusone/solver"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <image>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Solves one round of RPS-Minus-One from a photo of both players' hands.\n")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	cfg := detect.DefaultConfig()
	log.Printf("Running detection on %s using model %s", imagePath, cfg.ModelPath)

	det, err := detect.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	defer det.Close()

	img, err := images.Load(imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	result, err := det.Detect(img)
	if err != nil {
		log.Fatalf("Detection failed: %v", err)
	}

	solverCfg := solver.DefaultConfig()
	solverCfg.TieBreak = solver.RandTieBreak(rand.New(rand.NewSource(time.Now().UnixNano())))
	s := solver.New(solverCfg)

	hands := s.HandsFromResult(result)
	if len(hands) == 0 {
		fmt.Println("No hands were detected in the image.")
		return
	}

	verdict, err := s.Solve(hands)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(verdict.Report())
}
