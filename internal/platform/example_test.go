package platform_test

import (
	"context"
	"fmt"
	"log"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
)

func ExampleDetector_Detect() {
	detector := platform.NewDetector()
	desc, err := detector.Detect(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("OS: %s (%s)\n", desc.OSName, desc.OSArch)
	fmt.Printf("Platform: %s\n", platform.Resolve(desc))
}

func ExampleResolve() {
	desc := platform.Descriptor{
		VMName: "Go go1.25.2",
		OSName: "Linux",
		OSArch: "i686",
	}

	fmt.Println(platform.Resolve(desc))
	// Output: linux-32
}

func ExampleResolve_android() {
	// An Android VM wins regardless of OS name or architecture
	desc := platform.Descriptor{
		VMName: "Dalvik",
		OSName: "Linux",
		OSArch: "x86_64",
	}

	fmt.Println(platform.Resolve(desc))
	// Output: android
}
