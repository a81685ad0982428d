package cli

import (
	"unsafe"

	"github.com/sirkon/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/ulib"
	"github.com/sirkon/ulib/internal/fdset"
)

// NewDemoCommand команда воспроизведения демонстрационной программы.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	var timeout int

	cmd := &cobra.Command{
		Use:          "demo",
		Short:        "Run select, pipe and printf family demonstration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := newSystem(rootOpts, cmd)
			if err != nil {
				return err
			}

			if err := Demo(sys, timeout); err != nil {
				return errors.Wrap(err, "run demo")
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&timeout, "timeout", "t", 10, "select timeout in ticks")

	return cmd
}

// Demo демонстрация: канал, ожидание его готовности, ожидание с
// истечением срока, затем форматированный ввод-вывод.
func Demo(sys *ulib.System, timeout int) error {
	sys.Fprintf(ulib.Stderr, "This is a test program\n")

	rfds := fdset.NewDefault()
	fds, res := sys.Pipe()
	if res < 0 {
		return errors.Newf("create pipe: %s", sys.Errno())
	}

	message := "Hello, World!"
	sys.Write(fds[1], []byte(message))

	if err := rfds.Add(fds[0]); err != nil {
		return errors.Wrap(err, "watch pipe read end")
	}
	sys.Fprintf(ulib.Stdout, "select pipe read test with fd: %d\n", fds[0])
	ret := sys.Select(fds[0]+1, rfds, nil, nil, timeout)
	sys.Fprintf(ulib.Stdout, "result: %d\n", ret)

	sys.Fprintf(ulib.Stdout, "select timeout test\n")
	ret = sys.Select(1, nil, nil, nil, timeout)
	sys.Fprintf(ulib.Stdout, "result: %d\n", ret)

	buffer := make([]byte, 1025)
	if n := sys.Read(fds[0], buffer[:1024]); n >= 0 {
		buffer[n] = 0
		sys.Fprintf(ulib.Stdout, "read %d bytes from the pipe: %s\n", n, buffer)
	} else {
		sys.Fprintf(ulib.Stderr, "read\n")
	}

	sys.Printf("page size: %d\n", sys.Getpagesize())

	integer := 123
	character := 'g'
	str := "hello, world"
	pointer := &integer
	buf := make([]byte, 100)

	sys.Printf("sprintf test\n")
	sys.Sprintf(buf, "integer : (decimal) %d (octal) %o \n", integer, integer)
	sys.Printf("%s \n", buf)

	sys.Sprintf(buf, "character : %c \n", character)
	sys.Printf("%s \n", buf)

	sys.Sprintf(buf, "string : %s \n", str)
	sys.Printf("%s \n", buf)

	sys.Sprintf(buf, "pointer addr : %p \n", unsafe.Pointer(pointer))
	sys.Printf("%s \n", buf)

	sys.Sprintf(buf, "percent symbol : %% \n")
	sys.Printf("%s \n", buf)

	input := "1234"
	var i int
	sys.Sscanf(input, "%d", &i)

	sys.Printf("Number from : '%s' \n", input)
	sys.Printf("number : %d \n", i)

	for _, fd := range fds {
		sys.Close(fd)
	}

	return nil
}
