package api

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

func GetEpochMillis() int64 {
	return time.Now().UnixMilli()
}

func md5Hex(input string) string {
	hash := md5.Sum([]byte(input))
	return hex.EncodeToString(hash[:])
}

// ComputeToken derives the AD digest the device expects on every
// goform_set_cmd_process call: md5(md5(waInnerVersion + crVersion) + randomSeed).
func ComputeToken(randomSeed, waInnerVersion, crVersion string) string {
	rdMd5 := md5Hex(waInnerVersion + crVersion)
	return md5Hex(rdMd5 + randomSeed)
}

func EncodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// ToString renders scalar JSON values the way the device web UI compares them.
func ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int, int64, bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

func CreateTLSClient(timeoutSeconds int) (tls_client.HttpClient, error) {
	jar := tls_client.NewCookieJar()
	options := []tls_client.HttpClientOption{
		tls_client.WithCookieJar(jar),
		tls_client.WithTimeoutSeconds(timeoutSeconds),
		tls_client.WithInsecureSkipVerify(),
		tls_client.WithClientProfile(profiles.Chrome_133),
	}

	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
