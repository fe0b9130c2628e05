package session

// HelpText is printed by the help command.
const HelpText = `Commands (several may be given on one line):
  offset [n]             show or set the view offset (decimal or 0x..)
  length [n|end]         show or set the dump length, "end" dumps to the end
  row [n]                show or set the number of values per row
  type [code|name]       show or set the value type
                           b=i8 B=u8 h=i16 H=u16 i=i32 I=u32
                           q=i64 Q=u64 f=f32 d=f64
  little | big           set the byte order of multi-byte values
  endianness             show the byte order of this machine
  + n | +n | - n | -n    move the offset forward or back
  find <text>            jump to the next occurrence of text ("quoted text" allowed)
  find# <hex>            jump to the next occurrence of hex bytes
  clamp <min> <max> <n>  jump to the next run of n values within [min, max]
  >> <file> | >>file     append this line's dump to file
  d | dump               dump with the final state of the line
  state                  show the current view
  help | ? | -?          show this text
  q | quit | exit        leave
`
