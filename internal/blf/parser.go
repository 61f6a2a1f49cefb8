package blf

import "fmt"

// decodeObject decodes one object body. Unknown types come back as Unhandled
// so the stream keeps its shape; decode errors are structural and bubble up.
func decodeObject(h ObjectHeader, body []byte) (LogObject, error) {
	c := newCursor(body)
	switch h.Type {
	case TypeLogContainer:
		return decodeLogContainer(c, h)
	case TypeCanMessage:
		return decodeCanMessage(c, h)
	case TypeCanMessage2:
		return decodeCanMessage2(c, h)
	case TypeCanError:
		return decodeCanError(c, h)
	case TypeCanOverload:
		return decodeCanOverload(c, h)
	case TypeCanStatistic:
		return decodeCanStatistic(c, h)
	case TypeCanDriverError:
		return decodeCanDriverError(c, h)
	case TypeCanFdMessage:
		return decodeCanFdMessage(c, h)
	case TypeCanFdMessage64:
		return decodeCanFdMessage64(c, h)
	case TypeLinMessage:
		return decodeLinMessage(c, h)
	case TypeLinMessage2:
		return decodeLinMessage2(c, h)
	case TypeLinCrcError:
		return decodeLinCrcError(c, h)
	case TypeLinReceiveError:
		return decodeLinReceiveError(c, h)
	case TypeLinSendError:
		return decodeLinSendError(c, h)
	case TypeLinSlaveTimeout:
		return decodeLinSlaveTimeout(c, h)
	case TypeLinSyncError:
		return decodeLinSyncError(c, h)
	case TypeLinDlcInfo:
		return &LinDlcInfo{ObjectHeader: h}, nil
	case TypeLinSchedulerModeChange:
		return &LinSchedulerModeChange{ObjectHeader: h}, nil
	case TypeLinBaudrate:
		return &LinBaudrateEvent{ObjectHeader: h}, nil
	case TypeLinSleep:
		return &LinSleepModeEvent{ObjectHeader: h}, nil
	case TypeLinWakeup:
		return &LinWakeupEvent{ObjectHeader: h}, nil
	case TypeFlexRayData:
		return decodeFlexRayData(c, h)
	case TypeFlexRaySync:
		return decodeFlexRaySync(c, h)
	case TypeFlexRayV6StartCycleEvent:
		return decodeFlexRayV6StartCycleEvent(c, h)
	case TypeFlexRayMessage:
		return decodeFlexRayMessage(c, h)
	case TypeFlexRayStatusEvent:
		return decodeFlexRayStatusEvent(c, h)
	case TypeFlexRayVFrError:
		return decodeFlexRayVFrError(c, h)
	case TypeFlexRayVFrStatus:
		return decodeFlexRayVFrStatus(c, h)
	case TypeFlexRayVFrStartCycle:
		return decodeFlexRayVFrStartCycle(c, h)
	case TypeFlexRayVFrReceiveMsg:
		return decodeFlexRayVFrReceiveMsg(c, h)
	case TypeFlexRayVFrReceiveMsgEx:
		return decodeFlexRayVFrReceiveMsgEx(c, h)
	case TypeMostSpy:
		return decodeMostSpy(c, h)
	case TypeMostCtrl:
		return decodeMostCtrl(c, h)
	case TypeMostPkt2:
		return decodeMostPkt2(c, h)
	case TypeMostLightLock:
		return decodeMostLightLock(c, h)
	case TypeMostStatistic:
		return decodeMostStatistic(c, h)
	case TypeMostHwMode:
		return decodeMostHwMode(c, h)
	case TypeMostReg:
		return decodeMostReg(c, h)
	case TypeMostGenReg:
		return decodeMostGenReg(c, h)
	case TypeMostNetState:
		return decodeMostNetState(c, h)
	case TypeMostDataLost:
		return decodeMostDataLost(c, h)
	case TypeMostTrigger:
		return decodeMostTrigger(c, h)
	case TypeEthernetFrame:
		return decodeEthernetFrame(c, h)
	case TypeWlanFrame:
		return decodeWlanFrame(c, h)
	case TypeWlanStatistic:
		return decodeWlanStatistic(c, h)
	case TypeAppTrigger:
		return decodeAppTrigger(c, h)
	case TypeEventComment:
		return decodeEventComment(c, h)
	case TypeGlobalMarker:
		return decodeGlobalMarker(c, h)
	case TypeDataLostBegin:
		return decodeDataLostBegin(c, h)
	case TypeDataLostEnd:
		return decodeDataLostEnd(c, h)
	default:
		return decodeUnhandled(c, h)
	}
}

// Parser walks an object stream. The zero value is ready to use.
type Parser struct {
	// EmitContainers makes ForEach and Parse deliver each LogContainer
	// itself before the objects inside it. Off by default: most callers
	// only care about the payload objects.
	EmitContainers bool
}

// streamFrame is one level of the container expansion work list. Each frame
// is an independent 4-byte aligned stream with its own offsets.
type streamFrame struct {
	data      []byte
	pos       int
	base      int64
	container bool
}

// ForEach decodes every object in data, expanding LogContainers in place so
// contained objects are delivered exactly where the container sat in the
// stream. A non-nil error from fn stops the walk and is returned as-is.
func (p *Parser) ForEach(data []byte, fn func(LogObject) error) error {
	return p.forEach(data, 0, false, fn)
}

func (p *Parser) forEach(data []byte, base int64, container bool, fn func(LogObject) error) error {
	stack := []streamFrame{{data: data, base: base, container: container}}
	for len(stack) > 0 {
		fr := &stack[len(stack)-1]

		// Fewer than 16 bytes left cannot hold even the fixed header
		// prefix; writers pad streams, so this is end-of-stream, not
		// an error.
		if len(fr.data)-fr.pos < objectHeaderBaseSize {
			stack = stack[:len(stack)-1]
			continue
		}

		start := fr.pos
		c := &cursor{data: fr.data, pos: start}
		h, err := readObjectHeader(c)
		if err != nil {
			return parseErrAt(fr.base+int64(start), fr.container, err)
		}
		if h.ObjectSize < uint32(h.HeaderSize) || h.HeaderSize < objectHeaderBaseSize {
			return parseErrAt(fr.base+int64(start), fr.container,
				fmt.Errorf("object size %d inconsistent with header size %d", h.ObjectSize, h.HeaderSize))
		}
		end := start + int(h.ObjectSize)
		if end > len(fr.data) {
			return parseErrAt(fr.base+int64(start), fr.container, ErrUnexpectedEOF)
		}
		body := fr.data[start+int(h.HeaderSize) : end]

		// The declared size rounded to alignment is the sole authority
		// for the next object start. The final object's padding may be
		// absent.
		next := start + int(align4(h.ObjectSize))
		if next > len(fr.data) {
			next = len(fr.data)
		}
		fr.pos = next
		frBase, frContainer := fr.base, fr.container

		obj, err := decodeObject(h, body)
		if err != nil {
			return parseErrAt(frBase+int64(start), frContainer, err)
		}
		if lc, ok := obj.(*LogContainer); ok {
			if p.EmitContainers {
				if err := fn(lc); err != nil {
					return err
				}
			}
			stack = append(stack, streamFrame{data: lc.Data, container: true})
			continue
		}
		if err := fn(obj); err != nil {
			return err
		}
	}
	return nil
}

// Parse decodes every object in data and returns them in stream order, with
// container contents spliced in place.
func (p *Parser) Parse(data []byte) ([]LogObject, error) {
	var objs []LogObject
	err := p.ForEach(data, func(o LogObject) error {
		objs = append(objs, o)
		return nil
	})
	return objs, err
}
