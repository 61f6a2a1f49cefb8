package blf

import "fmt"

// ObjectType is the discriminant carried by every object header.
type ObjectType uint32

// Object type discriminants. The set matches what Vector tooling emits in
// practice; types not listed here decode to Unhandled rather than failing.
const (
	TypeUnknown                  ObjectType = 0
	TypeCanMessage               ObjectType = 1
	TypeCanError                 ObjectType = 2
	TypeCanOverload              ObjectType = 3
	TypeCanStatistic             ObjectType = 4
	TypeAppTrigger               ObjectType = 5
	TypeEnvInteger               ObjectType = 6
	TypeEnvDouble                ObjectType = 7
	TypeEnvString                ObjectType = 8
	TypeLogContainer             ObjectType = 10
	TypeLinMessage               ObjectType = 11
	TypeLinCrcError              ObjectType = 12
	TypeLinDlcInfo               ObjectType = 13
	TypeLinReceiveError          ObjectType = 14
	TypeLinSendError             ObjectType = 15
	TypeLinSlaveTimeout          ObjectType = 16
	TypeLinSchedulerModeChange   ObjectType = 17
	TypeLinSyncError             ObjectType = 18
	TypeLinBaudrate              ObjectType = 19
	TypeLinSleep                 ObjectType = 20
	TypeLinWakeup                ObjectType = 21
	TypeMostSpy                  ObjectType = 22
	TypeMostCtrl                 ObjectType = 23
	TypeMostLightLock            ObjectType = 24
	TypeMostStatistic            ObjectType = 25
	TypeFlexRayData              ObjectType = 29
	TypeFlexRaySync              ObjectType = 30
	TypeCanDriverError           ObjectType = 31
	TypeMostPkt                  ObjectType = 32
	TypeMostPkt2                 ObjectType = 33
	TypeMostHwMode               ObjectType = 34
	TypeMostReg                  ObjectType = 35
	TypeMostGenReg               ObjectType = 36
	TypeMostNetState             ObjectType = 37
	TypeMostDataLost             ObjectType = 38
	TypeMostTrigger              ObjectType = 39
	TypeFlexRayV6StartCycleEvent ObjectType = 40
	TypeFlexRayMessage           ObjectType = 41
	TypeFlexRayStatusEvent       ObjectType = 45
	TypeFlexRayVFrError          ObjectType = 47
	TypeFlexRayVFrStatus         ObjectType = 48
	TypeFlexRayVFrStartCycle     ObjectType = 49
	TypeFlexRayVFrReceiveMsg     ObjectType = 50
	TypeLinMessage2              ObjectType = 57
	TypeFlexRayVFrReceiveMsgEx   ObjectType = 66
	TypeEthernetFrame            ObjectType = 71
	TypeSystemVariable           ObjectType = 72
	TypeCanMessage2              ObjectType = 86
	TypeEventComment             ObjectType = 92
	TypeGlobalMarker             ObjectType = 96
	TypeCanFdMessage             ObjectType = 100
	TypeCanFdMessage64           ObjectType = 101
	TypeWlanFrame                ObjectType = 105
	TypeWlanStatistic            ObjectType = 106
	TypeDataLostBegin            ObjectType = 124
	TypeDataLostEnd              ObjectType = 125
)

var objectTypeNames = map[ObjectType]string{
	TypeUnknown:                  "Unknown",
	TypeCanMessage:               "CanMessage",
	TypeCanError:                 "CanError",
	TypeCanOverload:              "CanOverload",
	TypeCanStatistic:             "CanStatistic",
	TypeAppTrigger:               "AppTrigger",
	TypeEnvInteger:               "EnvInteger",
	TypeEnvDouble:                "EnvDouble",
	TypeEnvString:                "EnvString",
	TypeLogContainer:             "LogContainer",
	TypeLinMessage:               "LinMessage",
	TypeLinCrcError:              "LinCrcError",
	TypeLinDlcInfo:               "LinDlcInfo",
	TypeLinReceiveError:          "LinReceiveError",
	TypeLinSendError:             "LinSendError",
	TypeLinSlaveTimeout:          "LinSlaveTimeout",
	TypeLinSchedulerModeChange:   "LinSchedulerModeChange",
	TypeLinSyncError:             "LinSyncError",
	TypeLinBaudrate:              "LinBaudrate",
	TypeLinSleep:                 "LinSleep",
	TypeLinWakeup:                "LinWakeup",
	TypeMostSpy:                  "MostSpy",
	TypeMostCtrl:                 "MostCtrl",
	TypeMostLightLock:            "MostLightLock",
	TypeMostStatistic:            "MostStatistic",
	TypeFlexRayData:              "FlexRayData",
	TypeFlexRaySync:              "FlexRaySync",
	TypeCanDriverError:           "CanDriverError",
	TypeMostPkt:                  "MostPkt",
	TypeMostPkt2:                 "MostPkt2",
	TypeMostHwMode:               "MostHwMode",
	TypeMostReg:                  "MostReg",
	TypeMostGenReg:               "MostGenReg",
	TypeMostNetState:             "MostNetState",
	TypeMostDataLost:             "MostDataLost",
	TypeMostTrigger:              "MostTrigger",
	TypeFlexRayV6StartCycleEvent: "FlexRayV6StartCycleEvent",
	TypeFlexRayMessage:           "FlexRayMessage",
	TypeFlexRayStatusEvent:       "FlexRayStatusEvent",
	TypeFlexRayVFrError:          "FlexRayVFrError",
	TypeFlexRayVFrStatus:         "FlexRayVFrStatus",
	TypeFlexRayVFrStartCycle:     "FlexRayVFrStartCycle",
	TypeFlexRayVFrReceiveMsg:     "FlexRayVFrReceiveMsg",
	TypeLinMessage2:              "LinMessage2",
	TypeFlexRayVFrReceiveMsgEx:   "FlexRayVFrReceiveMsgEx",
	TypeEthernetFrame:            "EthernetFrame",
	TypeSystemVariable:           "SystemVariable",
	TypeCanMessage2:              "CanMessage2",
	TypeEventComment:             "EventComment",
	TypeGlobalMarker:             "GlobalMarker",
	TypeCanFdMessage:             "CanFdMessage",
	TypeCanFdMessage64:           "CanFdMessage64",
	TypeWlanFrame:                "WlanFrame",
	TypeWlanStatistic:            "WlanStatistic",
	TypeDataLostBegin:            "DataLostBegin",
	TypeDataLostEnd:              "DataLostEnd",
}

func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ObjectType(%d)", uint32(t))
}
