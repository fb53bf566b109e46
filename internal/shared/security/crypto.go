package security

import (
	"bytes"
	"io"

	"github.com/go-think/openssl"
	"github.com/klauspost/compress/gzip"
)

// Zip 用 gzip 压缩一帧 WS 数据。
func Zip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func UnZip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// AesCBCEncrypt 握手密钥同时作为 key 和 iv，与前端约定一致。
func AesCBCEncrypt(src, key, iv []byte, padding string) ([]byte, error) {
	return openssl.AesCBCEncrypt(src, key, iv, padding)
}

// AesCBCDecrypt ZEROS 填充解密后去掉尾部的 0 字节。
func AesCBCDecrypt(src, key, iv []byte, padding string) ([]byte, error) {
	out, err := openssl.AesCBCDecrypt(src, key, iv, padding)
	if err != nil {
		return nil, err
	}
	if padding == openssl.ZEROS_PADDING {
		out = bytes.TrimRight(out, "\x00")
	}
	return out, nil
}
