package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mergington-edu/activities/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	addr := os.Getenv("ACTIVITIES_API_ADDR")
	if addr == "" {
		addr = "http://localhost:8000"
	}

	client := sdk.New(addr)
	ctx := context.Background()

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "LIST":
		activities, err := client.Activities(ctx)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(activities)

	case "SHOW":
		if len(args) < 1 {
			log.Fatal("Usage: activities SHOW <activity>")
		}
		activities, err := client.Activities(ctx)
		if err != nil {
			log.Fatal(err)
		}
		act, ok := activities[args[0]]
		if !ok {
			log.Fatalf("Activity not found: %s", args[0])
		}
		printJSON(act)

	case "SIGNUP":
		if len(args) < 2 {
			log.Fatal("Usage: activities SIGNUP <activity> <email>")
		}
		msg, err := client.Signup(ctx, args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(msg)

	case "UNREGISTER":
		if len(args) < 2 {
			log.Fatal("Usage: activities UNREGISTER <activity> <email>")
		}
		msg, err := client.Unregister(ctx, args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(msg)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Activities CLI - Interface for the Mergington High activities API")
	fmt.Println("\nUsage:")
	fmt.Println("  activities LIST")
	fmt.Println("  activities SHOW <activity>")
	fmt.Println("  activities SIGNUP <activity> <email>")
	fmt.Println("  activities UNREGISTER <activity> <email>")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  ACTIVITIES_API_ADDR   Base URL of the API (default: http://localhost:8000)")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
