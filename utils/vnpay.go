package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"evrental/config"

	"github.com/go-resty/resty/v2"
)

// VNPay response codes
const (
	VNPayCodeSuccess = "00"
)

// MinorUnits converts an amount to the gateway's x100 integer representation.
// Rounded, not truncated, so float arithmetic residue cannot shift the value.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// SignVNPayParams builds the url-encoded, key-sorted query string for the given
// params and returns its HMAC-SHA512 hex digest under the merchant hash secret.
// vnp_SecureHash / vnp_SecureHashType must not be in the map.
func SignVNPayParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(params[k]))
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(sb.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildVNPayURL creates the redirect URL that sends the user to the VNPay
// payment page. The amount is sent in minor units (x100) per the gateway spec.
func BuildVNPayURL(txnRef string, amount float64, orderInfo, clientIP string) string {
	cfg := config.AppConfig
	now := time.Now()

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    cfg.VNPayTmnCode,
		"vnp_Amount":     strconv.FormatInt(MinorUnits(amount), 10),
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     txnRef,
		"vnp_OrderInfo":  orderInfo,
		"vnp_OrderType":  "other",
		"vnp_Locale":     "vn",
		"vnp_ReturnUrl":  cfg.VNPayReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": now.Format("20060102150405"),
		"vnp_ExpireDate": now.Add(15 * time.Minute).Format("20060102150405"),
	}

	hash := SignVNPayParams(params, cfg.VNPayHashSecret)

	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	values.Set("vnp_SecureHash", hash)

	return cfg.VNPayPayURL + "?" + values.Encode()
}

// VerifyVNPayCallback checks the vnp_SecureHash of a gateway callback against
// the remaining params. Returns false on a missing or mismatched signature.
func VerifyVNPayCallback(params map[string]string, secret string) bool {
	received := params["vnp_SecureHash"]
	if received == "" {
		return false
	}

	signed := make(map[string]string, len(params))
	for k, v := range params {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		signed[k] = v
	}

	expected := SignVNPayParams(signed, secret)
	return hmac.Equal([]byte(strings.ToLower(received)), []byte(expected))
}

// vnpayRefundResponse is the gateway reply to a refund request
type vnpayRefundResponse struct {
	VnpResponseCode  string `json:"vnp_ResponseCode"`
	VnpMessage       string `json:"vnp_Message"`
	VnpTransactionNo string `json:"vnp_TransactionNo"`
}

// RefundVNPayTransaction asks the gateway to refund a completed transaction.
// Returns an error unless the gateway answers with response code 00.
func RefundVNPayTransaction(txnRef, gatewayTxnNo string, amount float64, createdBy string) error {
	cfg := config.AppConfig
	now := time.Now()

	requestID := fmt.Sprintf("%d", now.UnixNano())
	params := map[string]string{
		"vnp_RequestId":       requestID,
		"vnp_Version":         "2.1.0",
		"vnp_Command":         "refund",
		"vnp_TmnCode":         cfg.VNPayTmnCode,
		"vnp_TransactionType": "02", // full refund
		"vnp_TxnRef":          txnRef,
		"vnp_Amount":          strconv.FormatInt(MinorUnits(amount), 10),
		"vnp_TransactionNo":   gatewayTxnNo,
		"vnp_CreateBy":        createdBy,
		"vnp_CreateDate":      now.Format("20060102150405"),
		"vnp_IpAddr":          "127.0.0.1",
		"vnp_OrderInfo":       "Refund " + txnRef,
	}
	params["vnp_SecureHash"] = SignVNPayParams(map[string]string{
		"vnp_RequestId":       params["vnp_RequestId"],
		"vnp_Version":         params["vnp_Version"],
		"vnp_Command":         params["vnp_Command"],
		"vnp_TmnCode":         params["vnp_TmnCode"],
		"vnp_TransactionType": params["vnp_TransactionType"],
		"vnp_TxnRef":          params["vnp_TxnRef"],
		"vnp_Amount":          params["vnp_Amount"],
		"vnp_TransactionNo":   params["vnp_TransactionNo"],
		"vnp_CreateBy":        params["vnp_CreateBy"],
		"vnp_CreateDate":      params["vnp_CreateDate"],
		"vnp_IpAddr":          params["vnp_IpAddr"],
		"vnp_OrderInfo":       params["vnp_OrderInfo"],
	}, cfg.VNPayHashSecret)

	client := resty.New().SetTimeout(15 * time.Second)

	var refundResp vnpayRefundResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		SetResult(&refundResp).
		Post(cfg.VNPayApiURL)
	if err != nil {
		log.Printf("VNPay refund request failed for %s: %v", txnRef, err)
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("VNPay refund API returned status %d", resp.StatusCode())
	}
	if refundResp.VnpResponseCode != VNPayCodeSuccess {
		return fmt.Errorf("VNPay refund rejected: code %s (%s)", refundResp.VnpResponseCode, refundResp.VnpMessage)
	}

	log.Printf("VNPay refund accepted for %s, gateway txn %s", txnRef, refundResp.VnpTransactionNo)
	return nil
}
