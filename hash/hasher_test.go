package hash

import (
	"errors"
	"hash"
	"strings"
	"testing"

	"github.com/gohash/sha2kit/mock"
	"github.com/gohash/sha2kit/sha2"
	"github.com/stretchr/testify/assert"
)

func TestHasher_FromString(t *testing.T) {
	t.Run("normal string", func(t *testing.T) {
		hasher := NewHasher().FromString("hello")
		assert.Equal(t, []byte("hello"), hasher.src)
	})

	t.Run("empty string", func(t *testing.T) {
		hasher := NewHasher().FromString("")
		assert.Equal(t, []byte{}, hasher.src)
	})

	t.Run("unicode string", func(t *testing.T) {
		hasher := NewHasher().FromString("你好世界")
		assert.Equal(t, []byte("你好世界"), hasher.src)
	})
}

func TestHasher_FromBytes(t *testing.T) {
	t.Run("normal bytes", func(t *testing.T) {
		data := []byte("hello")
		hasher := NewHasher().FromBytes(data)
		assert.Equal(t, data, hasher.src)
	})

	t.Run("empty bytes", func(t *testing.T) {
		hasher := NewHasher().FromBytes([]byte{})
		assert.Equal(t, []byte{}, hasher.src)
	})

	t.Run("nil bytes", func(t *testing.T) {
		hasher := NewHasher().FromBytes(nil)
		assert.Nil(t, hasher.src)
	})

	t.Run("binary data", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0x02, 0x03}
		hasher := NewHasher().FromBytes(data)
		assert.Equal(t, data, hasher.src)
	})
}

func TestHasher_FromFile(t *testing.T) {
	t.Run("normal file", func(t *testing.T) {
		file := mock.NewFile([]byte("hello"), "test.txt")
		hasher := NewHasher().FromFile(file)
		assert.Equal(t, file, hasher.reader)
		assert.Equal(t, hasher, hasher.FromFile(file))
	})

	t.Run("nil file", func(t *testing.T) {
		hasher := NewHasher().FromFile(nil)
		assert.Nil(t, hasher.reader)
	})
}

func TestHasher_ToRawString(t *testing.T) {
	t.Run("normal data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("hello")}
		result := hasher.ToRawString()
		assert.Equal(t, "hello", result)
	})

	t.Run("empty data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{}}
		result := hasher.ToRawString()
		assert.Equal(t, "", result)
	})

	t.Run("nil data", func(t *testing.T) {
		hasher := &Hasher{dst: nil}
		result := hasher.ToRawString()
		assert.Equal(t, "", result)
	})

	t.Run("unicode data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("你好世界")}
		result := hasher.ToRawString()
		assert.Equal(t, "你好世界", result)
	})
}

func TestHasher_ToRawBytes(t *testing.T) {
	t.Run("normal data", func(t *testing.T) {
		data := []byte("hello")
		hasher := &Hasher{dst: data}
		result := hasher.ToRawBytes()
		assert.Equal(t, data, result)
	})

	t.Run("empty data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{}}
		result := hasher.ToRawBytes()
		assert.Equal(t, []byte{}, result)
	})

	t.Run("nil data", func(t *testing.T) {
		hasher := &Hasher{dst: nil}
		result := hasher.ToRawBytes()
		assert.Equal(t, []byte{}, result)
	})

	t.Run("binary data", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0x02, 0x03}
		hasher := &Hasher{dst: data}
		result := hasher.ToRawBytes()
		assert.Equal(t, data, result)
	})
}

func TestHasher_ToBase64String(t *testing.T) {
	t.Run("normal data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("hello")}
		result := hasher.ToBase64String()
		assert.Equal(t, "aGVsbG8=", result)
	})

	t.Run("empty data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{}}
		result := hasher.ToBase64String()
		assert.Equal(t, "", result)
	})

	t.Run("nil data", func(t *testing.T) {
		hasher := &Hasher{dst: nil}
		result := hasher.ToBase64String()
		assert.Equal(t, "", result)
	})

	t.Run("binary data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{0x00, 0x01, 0x02, 0x03}}
		result := hasher.ToBase64String()
		assert.Equal(t, "AAECAw==", result)
	})
}

func TestHasher_ToBase64Bytes(t *testing.T) {
	t.Run("normal data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("hello")}
		result := hasher.ToBase64Bytes()
		assert.Equal(t, []byte("aGVsbG8="), result)
	})

	t.Run("empty data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{}}
		result := hasher.ToBase64Bytes()
		assert.Equal(t, []byte{}, result)
	})

	t.Run("nil data", func(t *testing.T) {
		hasher := &Hasher{dst: nil}
		result := hasher.ToBase64Bytes()
		assert.Equal(t, []byte{}, result)
	})

	t.Run("binary data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{0x00, 0x01, 0x02, 0x03}}
		result := hasher.ToBase64Bytes()
		assert.Equal(t, []byte("AAECAw=="), result)
	})
}

func TestHasher_ToHexString(t *testing.T) {
	t.Run("normal data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("hello")}
		result := hasher.ToHexString()
		assert.Equal(t, "68656c6c6f", result)
	})

	t.Run("empty data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{}}
		result := hasher.ToHexString()
		assert.Equal(t, "", result)
	})

	t.Run("nil data", func(t *testing.T) {
		hasher := &Hasher{dst: nil}
		result := hasher.ToHexString()
		assert.Equal(t, "", result)
	})

	t.Run("binary data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{0x00, 0x01, 0x02, 0x03}}
		result := hasher.ToHexString()
		assert.Equal(t, "00010203", result)
	})
}

func TestHasher_ToHexBytes(t *testing.T) {
	t.Run("normal data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte("hello")}
		result := hasher.ToHexBytes()
		assert.Equal(t, []byte("68656c6c6f"), result)
	})

	t.Run("empty data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{}}
		result := hasher.ToHexBytes()
		assert.Equal(t, []byte{}, result)
	})

	t.Run("nil data", func(t *testing.T) {
		hasher := &Hasher{dst: nil}
		result := hasher.ToHexBytes()
		assert.Equal(t, []byte{}, result)
	})

	t.Run("binary data", func(t *testing.T) {
		hasher := &Hasher{dst: []byte{0x00, 0x01, 0x02, 0x03}}
		result := hasher.ToHexBytes()
		assert.Equal(t, []byte("00010203"), result)
	})
}

func TestHasher_stream(t *testing.T) {
	t.Run("normal stream", func(t *testing.T) {
		file := mock.NewFile([]byte("hello"), "test.txt")
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sha2.New256() })
		assert.Nil(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 32, len(result)) // SHA2-256 produces 32 bytes
	})

	t.Run("empty stream", func(t *testing.T) {
		file := mock.NewFile([]byte{}, "empty.txt")
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sha2.New256() })
		assert.Nil(t, err)
		assert.Equal(t, []byte{}, result)
	})

	t.Run("large stream", func(t *testing.T) {
		data := strings.Repeat("a", 10000)
		file := mock.NewFile([]byte(data), "large.txt")
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sha2.New256() })
		assert.Nil(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 32, len(result))
	})

	t.Run("stream with hasher write error", func(t *testing.T) {
		// Create a mock reader that returns data
		file := mock.NewFile([]byte("hello"), "test.txt")
		hasher := &Hasher{reader: file}

		// Create a custom hash function that returns an error on Write
		errorHash := func() hash.Hash {
			return mock.NewErrorHasher(errors.New("mock write error"))
		}

		result, err := hasher.stream(errorHash)
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "stream copy error")
		assert.Equal(t, []byte{}, result)
	})

	t.Run("stream with error", func(t *testing.T) {
		file := mock.NewErrorFile(errors.New("read error"))
		hasher := &Hasher{reader: file}
		result, err := hasher.stream(func() hash.Hash { return sha2.New256() })
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "read error")
		assert.Equal(t, []byte{}, result)
	})
}
