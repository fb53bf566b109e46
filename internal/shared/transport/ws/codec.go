package ws

import (
	"errors"

	"FoodChain/internal/shared/security"

	"github.com/go-think/openssl"
)

var ErrNoSecretKey = errors.New("ws secret key not negotiated")

// EncodeFrame 先 AES-CBC 加密再 gzip。key 为空表示握手关闭了加密，只压缩。
func EncodeFrame(plain []byte, key string) ([]byte, error) {
	data := plain
	if key != "" {
		enc, err := security.AesCBCEncrypt(plain, []byte(key), []byte(key), openssl.ZEROS_PADDING)
		if err != nil {
			return nil, err
		}
		data = enc
	}
	return security.Zip(data)
}

// DecodeFrame 是 EncodeFrame 的逆过程。
func DecodeFrame(frame []byte, key string) ([]byte, error) {
	data, err := security.UnZip(frame)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return data, nil
	}
	return security.AesCBCDecrypt(data, []byte(key), []byte(key), openssl.ZEROS_PADDING)
}
