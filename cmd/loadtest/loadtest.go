//nolint:all
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "server base URL")
	numAccounts := flag.Int("accounts", 10, "accounts to register")
	numMessages := flag.Int("messages", 100, "messages to post per account")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	start := time.Now()

	var accountIDs []int
	for i := 0; i < *numAccounts; i++ {
		body := map[string]any{
			"username": fmt.Sprintf("loadtest-user-%d-%d", start.UnixNano(), i),
			"password": "loadtest-password",
		}
		var acct struct {
			ID int `json:"id"`
		}
		if err := postJSON(client, *baseURL+"/accounts", body, &acct); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		accountIDs = append(accountIDs, acct.ID)
	}
	log.Printf("registered %d accounts in %v", len(accountIDs), time.Since(start))

	msgStart := time.Now()
	posted := 0
	for _, id := range accountIDs {
		for i := 0; i < *numMessages; i++ {
			body := map[string]any{
				"posted_by":         id,
				"message_text":      fmt.Sprintf("load test message %d", i),
				"time_posted_epoch": time.Now().Unix(),
			}
			if err := postJSON(client, *baseURL+"/messages", body, nil); err != nil {
				log.Fatalf("post message failed: %v", err)
			}
			posted++
		}
	}
	elapsed := time.Since(msgStart)
	log.Printf("posted %d messages in %v (%.0f msg/s)",
		posted, elapsed, float64(posted)/elapsed.Seconds())

	res, err := client.Get(*baseURL + "/messages")
	if err != nil {
		log.Fatalf("failed to fetch messages: %v", err)
	}
	defer res.Body.Close()
	log.Printf("GET /messages -> %s", res.Status)
}

func postJSON(client *http.Client, url string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	res, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s: unexpected status %s", url, res.Status)
	}
	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}
