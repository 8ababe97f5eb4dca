package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// IntentCreator is the one capability the checkout flow needs from the
// payment processor. Injected so verification logic stays testable
// without network access.
type IntentCreator interface {
	CreateIntent(amountPaise int64, receipt string) (string, error)
}

// RazorpayResponse represents the processor's order-create response.
type RazorpayResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Error  *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// Client talks to the Razorpay orders endpoint over HTTP basic auth.
type Client struct {
	KeyID      string
	KeySecret  string
	APIURL     string
	HTTPClient *http.Client
}

func NewClient(keyID, keySecret, apiURL string) *Client {
	return &Client{
		KeyID:      keyID,
		KeySecret:  keySecret,
		APIURL:     apiURL,
		HTTPClient: &http.Client{},
	}
}

// CreateIntent requests a payment order for the given minor-unit amount
// and returns the processor's opaque order id.
func (cl *Client) CreateIntent(amountPaise int64, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}

	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest("POST", cl.APIURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(cl.KeyID, cl.KeySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment processor: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment API error (%d): %s", resp.StatusCode, string(body))
	}

	var rzpResp RazorpayResponse
	if err := json.Unmarshal(body, &rzpResp); err != nil {
		return "", fmt.Errorf("failed to parse payment response: %v", err)
	}
	if rzpResp.Error != nil {
		return "", fmt.Errorf("payment error: %s", rzpResp.Error.Description)
	}
	if rzpResp.ID == "" {
		return "", fmt.Errorf("payment processor returned empty order id")
	}
	return rzpResp.ID, nil
}

// VerifySignature recomputes HMAC-SHA256(secret, orderID + "|" + paymentID)
// and compares it against the submitted signature in constant time. This
// is the only integrity check in the payment path.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
