package generator

// runtimeHeaderName is the filename every generated header of a file
// that declares messages includes for the wire-format primitives and
// the ProtoMessage base class.
// Its contents are fixed for every generation run — a template
// resource rather than something derived from any particular schema.
const runtimeHeaderName = "ProtoBase.protocol.h"

// RuntimeHeaderContent returns the shared runtime-support header that
// every generated .protocol.h declaring messages includes. It is
// independent of any one schema:
// the wire::Buffer/wire::Decoder primitives the generated parse/
// serialize bodies call, and the ProtoMessage base class every
// generated message class derives from.
func RuntimeHeaderContent() []byte {
	return []byte(runtimeHeaderSource)
}

const runtimeHeaderSource = `// Generated by proto2cpp. DO NOT EDIT.
#ifndef ProtoBase_protocol_h
#define ProtoBase_protocol_h

#include <cstdint>
#include <cstring>
#include <stdexcept>
#include <string>
#include <vector>

namespace wire
{

enum class Type
{
    Varint = 0,
    Fixed64 = 1,
    Bytes = 2,
    Fixed32 = 5
};

inline uint32_t encode_key(uint32_t fieldIndex, Type wireType)
{
    return (fieldIndex << 3) | static_cast<uint32_t>(wireType);
}

inline void decode_key(uint32_t key, uint32_t & fieldIndex, Type & wireType)
{
    fieldIndex = key >> 3;
    wireType = static_cast<Type>(key & 0x7);
}

class Buffer
{
public:
    Buffer() {}

    size_t len() const { return mBytes.size(); }

    const std::vector<uint8_t> & bytes() const { return mBytes; }

    void append(const Buffer & other)
    {
        mBytes.insert(mBytes.end(), other.mBytes.begin(), other.mBytes.end());
    }

    void encodeVarint(uint64_t value)
    {
        while (value >= 0x80)
        {
            mBytes.push_back(static_cast<uint8_t>(value) | 0x80);
            value >>= 7;
        }
        mBytes.push_back(static_cast<uint8_t>(value));
    }

    void encodeKey(uint32_t fieldIndex, Type wireType)
    {
        encodeVarint(encode_key(fieldIndex, wireType));
    }

    void encodeRawBytes(const std::vector<uint8_t> & value)
    {
        encodeVarint(value.size());
        mBytes.insert(mBytes.end(), value.begin(), value.end());
    }

    void encodeStringBytes(const std::string & value)
    {
        encodeVarint(value.size());
        mBytes.insert(mBytes.end(), value.begin(), value.end());
    }

    template <typename T>
    void encodeMessage(const T & value)
    {
        append(Buffer::fromBytes(value.serialize()));
    }

    static Buffer fromBytes(const std::vector<uint8_t> & value)
    {
        Buffer b;
        b.mBytes = value;
        return b;
    }

private:
    std::vector<uint8_t> mBytes;
};

class Decoder
{
public:
    Decoder(const uint8_t * data, size_t length)
        : mData(data), mLength(length), mPos(0)
    {
    }

    const uint8_t * data() const { return mData + mPos; }

    size_t bytesLeft() const { return mLength - mPos; }

    size_t consumed() const { return mPos; }

    void decodeVarint(uint64_t & out)
    {
        out = 0;
        int shift = 0;
        while (true)
        {
            if (mPos >= mLength)
            {
                throw std::runtime_error("truncated varint");
            }
            uint8_t b = mData[mPos++];
            out |= static_cast<uint64_t>(b & 0x7f) << shift;
            if ((b & 0x80) == 0)
            {
                break;
            }
            shift += 7;
        }
    }

    uint64_t decodeVarint()
    {
        uint64_t out = 0;
        decodeVarint(out);
        return out;
    }

    void decodeKey(uint32_t & fieldIndex, Type & wireType)
    {
        uint64_t key = decodeVarint();
        decode_key(static_cast<uint32_t>(key), fieldIndex, wireType);
    }

    std::vector<uint8_t> decodeBytes()
    {
        uint64_t n = decodeVarint();
        if (mPos + n > mLength)
        {
            throw std::runtime_error("truncated length-delimited field");
        }
        std::vector<uint8_t> out(mData + mPos, mData + mPos + n);
        mPos += n;
        return out;
    }

    std::string decodeString()
    {
        std::vector<uint8_t> raw = decodeBytes();
        return std::string(raw.begin(), raw.end());
    }

    template <typename T>
    T decodeMessage()
    {
        T value;
        size_t consumed = value.parse(data(), bytesLeft());
        mPos += consumed;
        return value;
    }

    void skip(Type wireType)
    {
        switch (wireType)
        {
        case Type::Varint:
            decodeVarint();
            break;
        case Type::Fixed64:
            mPos += 8;
            break;
        case Type::Fixed32:
            mPos += 4;
            break;
        case Type::Bytes:
            decodeBytes();
            break;
        default:
            throw std::runtime_error("unknown wire type");
        }
    }

private:
    const uint8_t * mData;
    size_t mLength;
    size_t mPos;
};

} // namespace wire

class ProtoMessage
{
public:
    virtual ~ProtoMessage() {}

    virtual void clear() = 0;
    virtual size_t parse(const uint8_t * data, size_t length) = 0;
    virtual std::vector<uint8_t> serialize() const = 0;
    virtual size_t byte_size() const = 0;
    virtual bool valid() const = 0;
};

#endif // ProtoBase_protocol_h
`
