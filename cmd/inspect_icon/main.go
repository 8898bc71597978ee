package main

import (
	"fmt"
	"log"
	"os"

	"dockicon/icon"

	"github.com/disintegration/imaging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/inspect_icon <icon.png>")
		os.Exit(1)
	}

	iconPath := os.Args[1]

	img, err := imaging.Open(iconPath)
	if err != nil {
		log.Fatalf("Failed to open icon: %v", err)
	}

	b := img.Bounds()
	content := icon.OpaqueBounds(img)

	fmt.Printf("Icon: %s\n", iconPath)
	fmt.Printf("Canvas: %dx%d\n", b.Dx(), b.Dy())

	if content.Empty() {
		fmt.Println("Content: none (fully transparent)")
		return
	}

	fmt.Printf("Content: %dx%d at (%d,%d)\n", content.Dx(), content.Dy(), content.Min.X, content.Min.Y)
	fmt.Printf("Margins: left=%d top=%d right=%d bottom=%d\n",
		content.Min.X-b.Min.X, content.Min.Y-b.Min.Y, b.Max.X-content.Max.X, b.Max.Y-content.Max.Y)
}
