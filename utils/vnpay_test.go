package utils

import (
	"strings"
	"testing"

	"evrental/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-hash-secret"

func testCallbackParams(secret string) map[string]string {
	params := map[string]string{
		"vnp_TmnCode":      "VOLTRIDE",
		"vnp_TxnRef":       "abc-123",
		"vnp_Amount":       "5000000",
		"vnp_ResponseCode": "00",
	}
	params["vnp_SecureHash"] = SignVNPayParams(params, secret)
	return params
}

func TestSignVNPayParamsIsDeterministic(t *testing.T) {
	params := map[string]string{
		"vnp_TxnRef": "abc",
		"vnp_Amount": "100",
	}
	assert.Equal(t, SignVNPayParams(params, testSecret), SignVNPayParams(params, testSecret))
	assert.NotEqual(t, SignVNPayParams(params, testSecret), SignVNPayParams(params, "other-secret"))
}

func TestSignVNPayParamsSkipsEmptyValues(t *testing.T) {
	withEmpty := map[string]string{
		"vnp_TxnRef":    "abc",
		"vnp_OrderInfo": "",
	}
	withoutEmpty := map[string]string{
		"vnp_TxnRef": "abc",
	}
	assert.Equal(t, SignVNPayParams(withoutEmpty, testSecret), SignVNPayParams(withEmpty, testSecret))
}

func TestVerifyVNPayCallbackRoundTrip(t *testing.T) {
	params := testCallbackParams(testSecret)
	assert.True(t, VerifyVNPayCallback(params, testSecret))
}

func TestVerifyVNPayCallbackAcceptsUppercaseHash(t *testing.T) {
	params := testCallbackParams(testSecret)
	params["vnp_SecureHash"] = strings.ToUpper(params["vnp_SecureHash"])
	assert.True(t, VerifyVNPayCallback(params, testSecret))
}

func TestVerifyVNPayCallbackRejectsTampering(t *testing.T) {
	params := testCallbackParams(testSecret)
	params["vnp_Amount"] = "9999999"
	assert.False(t, VerifyVNPayCallback(params, testSecret))
}

func TestVerifyVNPayCallbackRejectsMissingHash(t *testing.T) {
	params := testCallbackParams(testSecret)
	delete(params, "vnp_SecureHash")
	assert.False(t, VerifyVNPayCallback(params, testSecret))
}

func TestVerifyVNPayCallbackRejectsWrongSecret(t *testing.T) {
	params := testCallbackParams("some-other-secret")
	assert.False(t, VerifyVNPayCallback(params, testSecret))
}

func TestMinorUnitsRoundsFloatResidue(t *testing.T) {
	assert.EqualValues(t, 5000000, MinorUnits(50000))
	assert.EqualValues(t, 1999999, MinorUnits(19999.99))
	// Arithmetic residue must round to the nearest unit, not truncate
	assert.EqualValues(t, 2000000, MinorUnits(19999.999999))
}

func TestBuildVNPayURLCarriesSignedAmount(t *testing.T) {
	config.AppConfig = &config.Config{
		VNPayTmnCode:    "VOLTRIDE",
		VNPayHashSecret: testSecret,
		VNPayPayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		VNPayReturnURL:  "http://localhost:5050/api/payments/vnpay/callback",
	}

	payURL := BuildVNPayURL("txn-1", 50000, "VoltRide deposit", "127.0.0.1")

	require.True(t, strings.HasPrefix(payURL, config.AppConfig.VNPayPayURL+"?"))
	// Amount is sent in minor units
	assert.Contains(t, payURL, "vnp_Amount=5000000")
	assert.Contains(t, payURL, "vnp_TxnRef=txn-1")
	assert.Contains(t, payURL, "vnp_SecureHash=")
}
