package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/ONSdigital/dp-fetcher/config"
	"github.com/ONSdigital/dp-fetcher/fetcher"
	"github.com/ONSdigital/dp-fetcher/transport"
	"github.com/ONSdigital/dp-fetcher/users"
	"github.com/ONSdigital/log.go/v2/log"
)

const serviceName = "fetch-users"

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	// Get Config
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(ctx, "error getting config", err)
		os.Exit(1)
	}

	tr, err := transport.NewDefault(transport.Config{
		Host:             cfg.UsersAPIURL,
		ServiceAuthToken: cfg.ServiceAuthToken,
		Timeout:          cfg.RequestTimeout,
	})
	if err != nil {
		log.Fatal(ctx, "fatal error trying to create transport", err, log.Data{"users_api_url": cfg.UsersAPIURL})
		os.Exit(1)
	}

	client, err := users.NewClient(tr.Perform)
	if err != nil {
		log.Fatal(ctx, "fatal error trying to create users client", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		path, ok := scanPath(scanner)
		if !ok {
			return
		}

		if path == "" {
			res, err := client.GetUsers(ctx)
			if err != nil {
				log.Error(ctx, "failed to get users", err, fetcher.LogData(err))
				continue
			}
			fmt.Printf("%d: %+v\n", res.StatusCode(), res)
			continue
		}

		s, err := fetchText(ctx, tr, path)
		if err != nil {
			log.Error(ctx, "failed to fetch resource", err, fetcher.LogData(err))
			continue
		}
		fmt.Println(s)
	}
}

// fetchText gets any other path on the users API as text
func fetchText(ctx context.Context, tr *transport.Client, path string) (string, error) {
	f, err := fetcher.Make(
		fetcher.Get(path),
		fetcher.Table[string]{http.StatusOK: fetcher.TextDecoder},
		fetcher.Unexpected[string](),
		fetcher.Named("text"),
	)
	if err != nil {
		return "", err
	}

	return fetcher.Run(ctx, tr.Perform, f)
}

// scanPath reads the path to fetch according to the user input
func scanPath(scanner *bufio.Scanner) (string, bool) {
	fmt.Println("--- [Fetch from users API] ---")

	fmt.Println("Please type a path, or press enter to get the users")
	fmt.Printf("$ ")
	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}
